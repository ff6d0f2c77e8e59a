package search

import (
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// Rollout policy: heavily biased toward attacking, with a random minority of
// picks for exploration. The bias mirrors the evaluator's preferences so
// playouts head toward the positions the evaluator rewards.

// pickRolloutAction chooses the next playout action from a non-empty list.
func (s *Searcher) pickRolloutAction(state *game.State, actions []core.Action) core.Action {
	var attacks, rest []core.Action
	for _, a := range actions {
		if a.IsAttack() {
			attacks = append(attacks, a)
		} else {
			rest = append(rest, a)
		}
	}

	if len(attacks) > 0 && s.rng.Float64() < s.attackPreference {
		if s.rng.Float64() < s.greedyRatio {
			return s.bestAttack(state, attacks)
		}
		return attacks[s.rng.Intn(len(attacks))]
	}

	if len(rest) > 0 {
		if s.rng.Float64() < s.greedyRatio {
			return s.bestMove(state, rest)
		}
		return rest[s.rng.Intn(len(rest))]
	}

	return actions[s.rng.Intn(len(actions))]
}

// bestAttack prefers near-lethal targets and combined move-and-attacks, which
// improve positioning for the same strike.
func (s *Searcher) bestAttack(state *game.State, attacks []core.Action) core.Action {
	best := attacks[0]
	bestScore := -1.0
	for _, a := range attacks {
		target := state.UnitByID(a.TargetID)
		if target == nil {
			continue
		}
		score := 1 - target.HealthFraction()
		if a.Type == core.ActionMoveAttack {
			score += 0.25
		}
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

// bestMove prefers destinations that close the distance to the nearest enemy
// and that put the unit's own attack range over an enemy.
func (s *Searcher) bestMove(state *game.State, moves []core.Action) core.Action {
	best := moves[0]
	bestScore := float64(-1 << 30)
	for _, a := range moves {
		if a.Type != core.ActionMove {
			continue
		}
		unit := state.UnitByID(a.UnitID)
		if unit == nil {
			continue
		}
		score := 0.0
		enemies := state.EnemiesOf(unit.FactionID)
		nearest := -1
		inRange := false
		for _, enemy := range enemies {
			dist, err := state.Grid.Distance(a.Dest, enemy.Position)
			if err != nil || dist < 0 {
				continue
			}
			if nearest < 0 || dist < nearest {
				nearest = dist
			}
			if dist > 0 && dist <= unit.AttackRange {
				inRange = true
			}
		}
		if nearest >= 0 {
			score -= float64(nearest)
		}
		if inRange {
			score += 10
		}
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}
