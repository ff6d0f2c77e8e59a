package game

import (
	"github.com/rs/zerolog/log"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// Turn-order policy shared by the live engine and the search: the acting
// faction is the lowest-ID faction that still has a unit able to act, and the
// turn rolls over once every living unit has gone passive.

// FactionToAct returns the faction whose units move next. With only one
// faction left, that faction acts. When every unit of every faction is
// passive the caller should already have rolled the turn over; the lowest
// faction ID is returned and the anomaly is logged rather than encoded as
// intended behavior.
func (s *State) FactionToAct() int {
	factions := s.LivingFactions()
	if len(factions) == 0 {
		return -1
	}
	if len(factions) == 1 {
		return factions[0]
	}
	for _, f := range factions {
		for _, u := range s.UnitsOfFaction(f) {
			if u.State != core.StatePassive {
				return f
			}
		}
	}
	log.Warn().Int("turn", s.Turn).Msg("all units passive while resolving faction to act; turn rollover was skipped somewhere")
	return factions[0]
}

// AllPassive reports whether every living unit has finished its turn.
func (s *State) AllPassive() bool {
	for _, u := range s.Units {
		if u.State != core.StatePassive {
			return false
		}
	}
	return len(s.Units) > 0
}

// RolloverIfExhausted resets every unit to active and advances the turn number
// once all living units are passive. Returns true when a rollover happened.
func (s *State) RolloverIfExhausted() bool {
	if !s.AllPassive() {
		return false
	}
	for _, u := range s.Units {
		u.State = core.StateActive
	}
	s.Turn++
	return true
}
