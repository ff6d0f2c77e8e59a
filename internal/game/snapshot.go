package game

import "github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"

// UnitSnapshot is the flat capture of one unit at the host boundary.
type UnitSnapshot struct {
	ID            int
	Col           int
	Row           int
	Health        int
	MaxHealth     int
	FactionID     int
	MovementRange int
	AttackRange   int
	State         core.ActionState
}

// Snapshot is the exchange form between a live board and the simulator: grid
// dimensions, turn number, and every living unit. Building a State from it
// and snapshotting back reproduces the same unit tuples.
type Snapshot struct {
	Width  int
	Height int
	Turn   int
	Units  []UnitSnapshot
}

// TakeSnapshot captures the state into its exchange form.
func TakeSnapshot(s *State) Snapshot {
	snap := Snapshot{
		Width:  s.Grid.Width,
		Height: s.Grid.Height,
		Turn:   s.Turn,
		Units:  make([]UnitSnapshot, 0, len(s.Units)),
	}
	for _, u := range s.Units {
		if !u.Alive() {
			continue
		}
		snap.Units = append(snap.Units, UnitSnapshot{
			ID:            u.ID,
			Col:           u.Position.Col,
			Row:           u.Position.Row,
			Health:        u.Health,
			MaxHealth:     u.MaxHealth,
			FactionID:     u.FactionID,
			MovementRange: u.MovementRange,
			AttackRange:   u.AttackRange,
			State:         u.State,
		})
	}
	return snap
}

// NewStateFromSnapshot builds an independent simulation state from the
// exchange form.
func NewStateFromSnapshot(snap Snapshot) *State {
	units := make([]*core.Unit, 0, len(snap.Units))
	for _, u := range snap.Units {
		units = append(units, &core.Unit{
			ID:            u.ID,
			Position:      core.NewHex(u.Col, u.Row),
			Health:        u.Health,
			MaxHealth:     u.MaxHealth,
			FactionID:     u.FactionID,
			MovementRange: u.MovementRange,
			AttackRange:   u.AttackRange,
			State:         u.State,
		})
	}
	s := NewState(core.NewGrid(snap.Width, snap.Height), units)
	s.Turn = snap.Turn
	return s
}
