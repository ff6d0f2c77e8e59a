package testutil

import (
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// NewUnit creates a healthy active melee unit for tests.
func NewUnit(id, factionID int, pos core.Hex) *core.Unit {
	return &core.Unit{
		ID:            id,
		Position:      pos,
		Health:        100,
		MaxHealth:     100,
		FactionID:     factionID,
		MovementRange: 3,
		AttackRange:   1,
		State:         core.StateActive,
	}
}

// NewDuelState creates an 8x8 battle with one unit per faction: faction 0 at
// (2,3), faction 1 at (5,3).
func NewDuelState() *game.State {
	return game.NewState(core.NewGrid(8, 8), []*core.Unit{
		NewUnit(1, 0, core.NewHex(2, 3)),
		NewUnit(2, 1, core.NewHex(5, 3)),
	})
}

// NewAdjacentDuelState creates a duel with the two units on adjacent hexes.
func NewAdjacentDuelState() *game.State {
	return game.NewState(core.NewGrid(8, 8), []*core.Unit{
		NewUnit(1, 0, core.NewHex(3, 3)),
		NewUnit(2, 1, core.NewHex(4, 3)),
	})
}
