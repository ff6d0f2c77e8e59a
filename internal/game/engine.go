package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// Engine hosts the authoritative battle: it owns the live state and applies
// decisions through the same Generator the planner searches with, so the
// planner never evaluates against rules the board does not actually enforce.
type Engine struct {
	id       string
	state    *State
	gen      *Generator
	logger   zerolog.Logger
	gameOver bool
}

// NewEngine creates an engine around the given initial state.
func NewEngine(state *State, gen *Generator, logger zerolog.Logger) *Engine {
	id := uuid.NewString()
	e := &Engine{
		id:     id,
		state:  state,
		gen:    gen,
		logger: logger.With().Str("component", "Engine").Str("battle_id", id).Logger(),
	}
	e.gameOver = state.IsGameOver()
	return e
}

// ID returns the battle identifier used in log context.
func (e *Engine) ID() string {
	return e.id
}

// State exposes the live state. Callers planning a move should search over
// a snapshot, not this instance.
func (e *Engine) State() *State {
	return e.state
}

// Snapshot captures the live state in its exchange form.
func (e *Engine) Snapshot() Snapshot {
	return TakeSnapshot(e.state)
}

// Step applies one action to the live board and advances turn bookkeeping.
func (e *Engine) Step(action core.Action) error {
	if e.gameOver {
		return core.ErrGameOver
	}

	turnBefore := e.state.Turn
	if err := e.gen.Apply(e.state, action); err != nil {
		return fmt.Errorf("step: %w", err)
	}

	evt := e.logger.Info().
		Int("turn", e.state.Turn).
		Str("action", action.String()).
		Int("units_left", len(e.state.Units))
	if e.state.Turn != turnBefore {
		evt = evt.Bool("turn_rollover", true)
	}
	evt.Msg("action applied")

	if e.state.IsGameOver() {
		e.gameOver = true
		e.logger.Info().Int("winner_faction", e.state.Winner()).Msg("battle decided")
	}
	return nil
}

// IsGameOver reports whether the battle has been decided.
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

// Winner returns the surviving faction ID, or -1 while undecided.
func (e *Engine) Winner() int {
	return e.state.Winner()
}
