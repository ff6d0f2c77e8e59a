package game

import (
	"sort"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// State is a self-contained snapshot of a battle: the grid bounds, every
// living unit, and the turn number. It has no link back to whatever board it
// was captured from, so the search can clone and mutate it freely.
type State struct {
	Grid  core.Grid
	Units []*core.Unit
	Turn  int
}

// NewState creates a state over the given grid holding the given units.
func NewState(grid core.Grid, units []*core.Unit) *State {
	return &State{Grid: grid, Units: units}
}

// Clone returns a fully independent deep copy. Mutating the clone never
// touches the original; the search tree depends on this.
func (s *State) Clone() *State {
	units := make([]*core.Unit, len(s.Units))
	for i, u := range s.Units {
		units[i] = u.Clone()
	}
	return &State{Grid: s.Grid, Units: units, Turn: s.Turn}
}

// UnitByID returns the living unit with the given ID, or nil.
func (s *State) UnitByID(id int) *core.Unit {
	for _, u := range s.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// UnitAt returns the unit occupying the given hex, or nil.
func (s *State) UnitAt(h core.Hex) *core.Unit {
	for _, u := range s.Units {
		if u.Position == h {
			return u
		}
	}
	return nil
}

// UnitsOfFaction returns every living unit belonging to the faction.
func (s *State) UnitsOfFaction(factionID int) []*core.Unit {
	var units []*core.Unit
	for _, u := range s.Units {
		if u.FactionID == factionID {
			units = append(units, u)
		}
	}
	return units
}

// EnemiesOf returns every living unit not belonging to the faction.
func (s *State) EnemiesOf(factionID int) []*core.Unit {
	var units []*core.Unit
	for _, u := range s.Units {
		if u.FactionID != factionID {
			units = append(units, u)
		}
	}
	return units
}

// LivingFactions returns the distinct faction IDs still on the board, in
// ascending order. Ascending ID is the stable enumeration used everywhere a
// faction has to be picked "first".
func (s *State) LivingFactions() []int {
	seen := make(map[int]struct{})
	var factions []int
	for _, u := range s.Units {
		if _, ok := seen[u.FactionID]; !ok {
			seen[u.FactionID] = struct{}{}
			factions = append(factions, u.FactionID)
		}
	}
	sort.Ints(factions)
	return factions
}

// IsGameOver reports whether at most one faction remains.
func (s *State) IsGameOver() bool {
	return len(s.LivingFactions()) <= 1
}

// Winner returns the surviving faction ID, or -1 if the battle is not decided
// or nobody survived.
func (s *State) Winner() int {
	factions := s.LivingFactions()
	if len(factions) == 1 {
		return factions[0]
	}
	return -1
}

// RemoveDead drops every unit whose health reached zero.
func (s *State) RemoveDead() {
	alive := s.Units[:0]
	for _, u := range s.Units {
		if u.Alive() {
			alive = append(alive, u)
		}
	}
	s.Units = alive
}

// OccupiedBy returns the positions of every living unit of the faction.
func (s *State) OccupiedBy(factionID int) core.HexSet {
	set := make(core.HexSet)
	for _, u := range s.Units {
		if u.FactionID == factionID {
			set.Add(u.Position)
		}
	}
	return set
}
