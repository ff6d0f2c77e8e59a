package game

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// Generator enumerates legal actions and applies them to a state. The live
// engine and the search both go through Apply, so the transition rules exist
// in exactly one place.
type Generator struct {
	resolver *core.CombatResolver
	logger   zerolog.Logger
}

// NewGenerator creates a generator resolving combat through the given resolver.
func NewGenerator(resolver *core.CombatResolver, logger zerolog.Logger) *Generator {
	return &Generator{
		resolver: resolver,
		logger:   logger.With().Str("component", "ActionGenerator").Logger(),
	}
}

// attackableEnemies returns the enemies of the faction within attack range of
// the given hex, nearest first by raw scan order.
func attackableEnemies(s *State, from core.Hex, factionID, attackRange int) []*core.Unit {
	var targets []*core.Unit
	for _, enemy := range s.EnemiesOf(factionID) {
		dist, err := s.Grid.Distance(from, enemy.Position)
		if err != nil || dist <= 0 {
			continue
		}
		if dist <= attackRange {
			targets = append(targets, enemy)
		}
	}
	return targets
}

// LegalActions enumerates every action the unit may take right now. Attack
// type actions come before move-type actions; the simulation policy and the
// expansion order both benefit from attacks being discovered first. A unit
// with nothing else available gets a single pass.
func (g *Generator) LegalActions(s *State, unit *core.Unit) []core.Action {
	if unit == nil || !unit.Alive() {
		return nil
	}

	var attacks, moves []core.Action

	if unit.State == core.StateActive || unit.State == core.StateReady {
		for _, enemy := range attackableEnemies(s, unit.Position, unit.FactionID, unit.AttackRange) {
			attacks = append(attacks, core.NewAttack(unit.ID, enemy.ID))
		}
	}

	if unit.State == core.StateActive {
		blocked := s.OccupiedBy(unit.FactionID)
		reachable, err := s.Grid.MovementRange(unit.Position, unit.MovementRange, blocked)
		if err != nil {
			g.logger.Error().Err(err).Int("unit_id", unit.ID).Msg("movement range query failed")
			reachable = nil
		}
		// Sorted destinations keep enumeration deterministic, which a seeded
		// search run depends on.
		dests := make([]core.Hex, 0, len(reachable))
		for h := range reachable {
			dests = append(dests, h)
		}
		sort.Slice(dests, func(i, j int) bool {
			if dests[i].Row != dests[j].Row {
				return dests[i].Row < dests[j].Row
			}
			return dests[i].Col < dests[j].Col
		})
		for _, dest := range dests {
			if occupant := s.UnitAt(dest); occupant != nil {
				continue
			}
			stepDist, err := s.Grid.Distance(unit.Position, dest)
			if err != nil {
				continue
			}
			// A combined move-and-attack is only offered on a single-hex step.
			if stepDist == 1 {
				targets := attackableEnemies(s, dest, unit.FactionID, unit.AttackRange)
				if len(targets) > 0 {
					for _, enemy := range targets {
						attacks = append(attacks, core.NewMoveAttack(unit.ID, dest, enemy.ID))
					}
					continue
				}
			}
			moves = append(moves, core.NewMove(unit.ID, dest))
		}
	}

	actions := append(attacks, moves...)
	if len(actions) == 0 {
		actions = append(actions, core.NewPass(unit.ID))
	}
	return actions
}

// LegalActionsForFaction aggregates LegalActions over every living unit of
// the faction that can still act. When nothing at all is available, a single
// pass for an arbitrary remaining unit keeps the turn loop able to progress.
func (g *Generator) LegalActionsForFaction(s *State, factionID int) []core.Action {
	var attacks, rest []core.Action
	for _, unit := range s.UnitsOfFaction(factionID) {
		if unit.State == core.StatePassive {
			continue
		}
		for _, a := range g.LegalActions(s, unit) {
			if a.IsAttack() {
				attacks = append(attacks, a)
			} else {
				rest = append(rest, a)
			}
		}
	}
	actions := append(attacks, rest...)
	if len(actions) == 0 {
		units := s.UnitsOfFaction(factionID)
		if len(units) == 0 {
			return nil
		}
		actions = append(actions, core.NewPass(units[0].ID))
	}
	return actions
}

// Apply executes the action against the state in place, then rolls the turn
// over if every living unit has gone passive. A stale action referencing a
// unit or target that no longer exists is a diagnosable no-op, not a failure:
// one bad action must not corrupt an in-progress search.
func (g *Generator) Apply(s *State, action core.Action) error {
	unit := s.UnitByID(action.UnitID)
	if unit == nil {
		g.logger.Debug().Int("unit_id", action.UnitID).Str("action", action.String()).Msg("action references missing unit")
		return fmt.Errorf("apply %s: %w", action.Type, core.ErrUnitNotFound)
	}

	switch action.Type {
	case core.ActionMove:
		g.applyMove(s, unit, action.Dest)
	case core.ActionAttack:
		if err := g.applyAttack(s, unit, action.TargetID); err != nil {
			return err
		}
	case core.ActionMoveAttack:
		g.applyMove(s, unit, action.Dest)
		if unit.Alive() {
			if err := g.applyAttack(s, unit, action.TargetID); err != nil {
				return err
			}
		}
	case core.ActionPass:
		unit.State = core.StatePassive
	}

	s.RolloverIfExhausted()
	return nil
}

// applyMove relocates the unit and recomputes its per-turn state: spending the
// whole movement budget ends the turn; a single-hex step with an enemy in
// reach leaves the unit ready to attack.
func (g *Generator) applyMove(s *State, unit *core.Unit, dest core.Hex) {
	stepDist, err := s.Grid.Distance(unit.Position, dest)
	if err != nil {
		g.logger.Debug().Err(err).Int("unit_id", unit.ID).Str("dest", dest.String()).Msg("move to invalid destination ignored")
		return
	}
	unit.Position = dest

	switch {
	case stepDist >= unit.MovementRange:
		unit.State = core.StatePassive
	case stepDist == 1 && len(attackableEnemies(s, dest, unit.FactionID, unit.AttackRange)) > 0:
		unit.State = core.StateReady
	default:
		unit.State = core.StatePassive
	}
}

// applyAttack resolves combat against the target and retires the attacker.
func (g *Generator) applyAttack(s *State, unit *core.Unit, targetID int) error {
	target := s.UnitByID(targetID)
	if target == nil {
		g.logger.Debug().Int("unit_id", unit.ID).Int("target_id", targetID).Msg("attack references missing target")
		return fmt.Errorf("attack unit %d: %w", targetID, core.ErrTargetNotFound)
	}

	dist, err := s.Grid.Distance(unit.Position, target.Position)
	if err != nil {
		return fmt.Errorf("attack unit %d: %w", targetID, err)
	}

	g.resolver.Resolve(unit, target, dist)
	if unit.Alive() {
		unit.State = core.StatePassive
	}
	s.RemoveDead()
	return nil
}
