package core

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/common"
)

// DamageParams holds the tunables of the damage formula. The same formula is
// used for planning rollouts and for real combat so the planner's estimates
// stay a faithful proxy of real outcomes.
type DamageParams struct {
	FractionMin float64 // lower bound of the max-health fraction
	FractionMax float64 // upper bound of the max-health fraction
	VarianceMin float64 // lower bound of the variance multiplier
	VarianceMax float64 // upper bound of the variance multiplier
	DamageMin   int     // final damage floor
	DamageMax   int     // final damage ceiling
}

// DefaultDamageParams returns the standard damage tuning.
func DefaultDamageParams() DamageParams {
	return DamageParams{
		FractionMin: 0.20,
		FractionMax: 0.30,
		VarianceMin: 0.8,
		VarianceMax: 1.2,
		DamageMin:   10,
		DamageMax:   50,
	}
}

// CombatOutcome describes the result of one attack resolution.
type CombatOutcome struct {
	DamageToDefender   int
	DamageToAttacker   int
	DefenderEliminated bool
	AttackerEliminated bool
	CounterOccurred    bool
}

// CombatResolver applies the damage formula between two units, including the
// defender's counter-attack when it survives an adjacent hit. Health is
// mutated in place; removing the dead is the caller's job.
type CombatResolver struct {
	params DamageParams
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewCombatResolver creates a resolver drawing from the given random source.
func NewCombatResolver(params DamageParams, rng *rand.Rand, logger zerolog.Logger) *CombatResolver {
	return &CombatResolver{
		params: params,
		rng:    rng,
		logger: logger.With().Str("component", "CombatResolver").Logger(),
	}
}

// rollDamage draws one damage value against a unit with the given max health.
func (r *CombatResolver) rollDamage(targetMaxHealth int) int {
	p := r.params
	fraction := p.FractionMin + r.rng.Float64()*(p.FractionMax-p.FractionMin)
	variance := p.VarianceMin + r.rng.Float64()*(p.VarianceMax-p.VarianceMin)
	damage := int(math.Round(float64(targetMaxHealth) * fraction * variance))
	return common.Clamp(damage, p.DamageMin, p.DamageMax)
}

// Resolve applies one attack from attacker to defender. distance is the hex
// distance between the two; the defender counter-attacks only when it survives
// the hit and the fight is adjacent (distance <= 1).
func (r *CombatResolver) Resolve(attacker, defender *Unit, distance int) CombatOutcome {
	outcome := CombatOutcome{}

	outcome.DamageToDefender = r.rollDamage(defender.MaxHealth)
	defender.ApplyDamage(outcome.DamageToDefender)
	outcome.DefenderEliminated = !defender.Alive()

	if !outcome.DefenderEliminated && distance <= 1 {
		outcome.CounterOccurred = true
		outcome.DamageToAttacker = r.rollDamage(attacker.MaxHealth)
		attacker.ApplyDamage(outcome.DamageToAttacker)
		outcome.AttackerEliminated = !attacker.Alive()
	}

	r.logger.Debug().
		Int("attacker_id", attacker.ID).
		Int("defender_id", defender.ID).
		Int("damage_to_defender", outcome.DamageToDefender).
		Int("damage_to_attacker", outcome.DamageToAttacker).
		Bool("counter", outcome.CounterOccurred).
		Msg("combat resolved")

	return outcome
}
