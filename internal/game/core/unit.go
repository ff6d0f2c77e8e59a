package core

import (
	"fmt"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/common"
)

// ActionState tracks what a unit may still do this turn.
type ActionState int

const (
	// StateActive units may move, attack, or both.
	StateActive ActionState = iota
	// StateReady units moved one step and may still attack.
	StateReady
	// StatePassive units are done until the turn rolls over.
	StatePassive
)

// String returns the name of the action state.
func (s ActionState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateReady:
		return "ready"
	case StatePassive:
		return "passive"
	default:
		return fmt.Sprintf("ActionState(%d)", int(s))
	}
}

// Unit is a single combatant on the grid.
type Unit struct {
	ID            int
	Position      Hex
	Health        int
	MaxHealth     int
	FactionID     int
	MovementRange int
	AttackRange   int
	State         ActionState
}

// Alive reports whether the unit is still in the fight.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// HealthFraction returns remaining health as a fraction of max health.
func (u *Unit) HealthFraction() float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	return float64(u.Health) / float64(u.MaxHealth)
}

// Clone returns an independent copy of the unit.
func (u *Unit) Clone() *Unit {
	clone := *u
	return &clone
}

// ApplyDamage reduces health by the given amount, clamped to [0, MaxHealth].
func (u *Unit) ApplyDamage(damage int) {
	u.Health = common.Clamp(u.Health-damage, 0, u.MaxHealth)
}
