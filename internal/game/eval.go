package game

import "github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"

// Weights is the tunable coefficient table of the positional evaluation. The
// individual coefficients are policy, not contract; they live in one struct so
// they can be recalibrated from config without touching the scoring code.
type Weights struct {
	UnitDiff           float64 `mapstructure:"unit_diff"`
	HealthDiff         float64 `mapstructure:"health_diff"`
	AvgHealthFrac      float64 `mapstructure:"avg_health_frac"`
	AttackableBonus    float64 `mapstructure:"attackable_bonus"`
	FinishingBonus     float64 `mapstructure:"finishing_bonus"`
	ThreatPenalty      float64 `mapstructure:"threat_penalty"`
	RetreatBonus       float64 `mapstructure:"retreat_bonus"`
	FocusFireBonus     float64 `mapstructure:"focus_fire_bonus"`
	ProximityWeight    float64 `mapstructure:"proximity_weight"`
	TerminalScore      float64 `mapstructure:"terminal_score"`
	CriticalHealthFrac float64 `mapstructure:"critical_health_frac"`
}

// DefaultWeights returns the hand-tuned evaluation coefficients.
func DefaultWeights() Weights {
	return Weights{
		UnitDiff:           100,
		HealthDiff:         0.5,
		AvgHealthFrac:      50,
		AttackableBonus:    60,
		FinishingBonus:     40,
		ThreatPenalty:      15,
		RetreatBonus:       5,
		FocusFireBonus:     25,
		ProximityWeight:    2,
		TerminalScore:      10000,
		CriticalHealthFrac: 0.3,
	}
}

// Evaluator scores a state from one faction's perspective. The search uses it
// as the rollout payoff; the rollout policy leans on the same positional ideas.
type Evaluator struct {
	weights Weights
}

// NewEvaluator creates an evaluator with the given coefficient table.
func NewEvaluator(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

// Evaluate returns a score for the state, higher being better for the given
// faction. Decided games short-circuit to the terminal score.
func (e *Evaluator) Evaluate(s *State, factionID int) float64 {
	w := e.weights

	if s.IsGameOver() {
		switch s.Winner() {
		case factionID:
			return w.TerminalScore
		case -1:
			return 0 // mutual annihilation
		default:
			return -w.TerminalScore
		}
	}

	friendly := s.UnitsOfFaction(factionID)
	enemies := s.EnemiesOf(factionID)

	score := w.UnitDiff * float64(len(friendly)-len(enemies))
	score += w.HealthDiff * float64(totalHealth(friendly)-totalHealth(enemies))
	score += w.AvgHealthFrac * (avgHealthFraction(friendly) - avgHealthFraction(enemies))

	// Per-enemy count of friendlies able to strike it, for the focus-fire term.
	threatening := make(map[int]int)

	var distanceSum float64
	var distanceCount int

	for _, u := range friendly {
		targets := attackableEnemies(s, u.Position, u.FactionID, u.AttackRange)
		score += w.AttackableBonus * float64(len(targets))
		for _, t := range targets {
			score += w.FinishingBonus * (1 - t.HealthFraction())
			threatening[t.ID]++
		}

		nearest := nearestEnemyDistance(s, u, enemies)
		if nearest >= 0 {
			distanceSum += float64(nearest)
			distanceCount++
		}

		if len(targets) == 0 {
			threats := countThreats(s, u, enemies)
			score -= w.ThreatPenalty * float64(threats)
			if threats > 0 && u.HealthFraction() < w.CriticalHealthFrac && nearest >= 0 {
				// Cornered and critically wounded: reward opening distance.
				score += w.RetreatBonus * float64(nearest)
			}
		}
	}

	for _, n := range threatening {
		if n > 1 {
			score += w.FocusFireBonus * float64(n-1)
		}
	}

	if distanceCount > 0 {
		score -= w.ProximityWeight * distanceSum / float64(distanceCount)
	}

	return score
}

func totalHealth(units []*core.Unit) int {
	total := 0
	for _, u := range units {
		total += u.Health
	}
	return total
}

func avgHealthFraction(units []*core.Unit) float64 {
	if len(units) == 0 {
		return 0
	}
	var sum float64
	for _, u := range units {
		sum += u.HealthFraction()
	}
	return sum / float64(len(units))
}

// nearestEnemyDistance returns the hex distance to the closest enemy, or -1
// when there is none.
func nearestEnemyDistance(s *State, u *core.Unit, enemies []*core.Unit) int {
	nearest := -1
	for _, enemy := range enemies {
		dist, err := s.Grid.Distance(u.Position, enemy.Position)
		if err != nil || dist < 0 {
			continue
		}
		if nearest < 0 || dist < nearest {
			nearest = dist
		}
	}
	return nearest
}

// countThreats returns how many enemies have u inside their attack range.
func countThreats(s *State, u *core.Unit, enemies []*core.Unit) int {
	threats := 0
	for _, enemy := range enemies {
		dist, err := s.Grid.Distance(enemy.Position, u.Position)
		if err != nil || dist <= 0 {
			continue
		}
		if dist <= enemy.AttackRange {
			threats++
		}
	}
	return threats
}
