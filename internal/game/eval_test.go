package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

func TestEvaluator_TerminalStates(t *testing.T) {
	e := NewEvaluator(DefaultWeights())

	t.Run("WinScoresTerminal", func(t *testing.T) {
		s := NewState(core.NewGrid(8, 8), []*core.Unit{newTestUnit(1, 0, core.NewHex(1, 1))})
		assert.Equal(t, DefaultWeights().TerminalScore, e.Evaluate(s, 0))
	})

	t.Run("LossScoresNegativeTerminal", func(t *testing.T) {
		s := NewState(core.NewGrid(8, 8), []*core.Unit{newTestUnit(1, 1, core.NewHex(1, 1))})
		assert.Equal(t, -DefaultWeights().TerminalScore, e.Evaluate(s, 0))
	})

	t.Run("MutualAnnihilationIsNeutral", func(t *testing.T) {
		s := NewState(core.NewGrid(8, 8), nil)
		assert.Zero(t, e.Evaluate(s, 0))
	})
}

func TestEvaluator_ZeroSumSymmetryOfMaterial(t *testing.T) {
	// With a mirrored position the two perspectives must agree in magnitude.
	e := NewEvaluator(DefaultWeights())
	s := NewState(core.NewGrid(9, 7), []*core.Unit{
		newTestUnit(1, 0, core.NewHex(1, 3)),
		newTestUnit(2, 1, core.NewHex(7, 3)),
	})
	assert.InDelta(t, e.Evaluate(s, 0), e.Evaluate(s, 1), 1e-9)
}

func TestEvaluator_MoreUnitsScoresHigher(t *testing.T) {
	e := NewEvaluator(DefaultWeights())
	even := NewState(core.NewGrid(10, 8), []*core.Unit{
		newTestUnit(1, 0, core.NewHex(1, 1)),
		newTestUnit(2, 1, core.NewHex(8, 6)),
	})
	ahead := NewState(core.NewGrid(10, 8), []*core.Unit{
		newTestUnit(1, 0, core.NewHex(1, 1)),
		newTestUnit(3, 0, core.NewHex(1, 3)),
		newTestUnit(2, 1, core.NewHex(8, 6)),
	})
	assert.Greater(t, e.Evaluate(ahead, 0), e.Evaluate(even, 0))
}

func TestEvaluator_WoundedEnemyInReachScoresHigher(t *testing.T) {
	e := NewEvaluator(DefaultWeights())

	base := NewState(core.NewGrid(10, 8), []*core.Unit{
		newTestUnit(1, 0, core.NewHex(3, 3)),
		newTestUnit(2, 1, core.NewHex(4, 3)),
	})
	wounded := base.Clone()
	wounded.UnitByID(2).Health = 20

	assert.Greater(t, e.Evaluate(wounded, 0), e.Evaluate(base, 0),
		"a near-lethal attackable enemy must score better than a healthy one")
}

func TestEvaluator_AttackPositionBeatsStandingOff(t *testing.T) {
	e := NewEvaluator(DefaultWeights())

	engaged := NewState(core.NewGrid(10, 8), []*core.Unit{
		newTestUnit(1, 0, core.NewHex(3, 3)),
		newTestUnit(2, 1, core.NewHex(4, 3)),
	})
	distant := NewState(core.NewGrid(10, 8), []*core.Unit{
		newTestUnit(1, 0, core.NewHex(0, 3)),
		newTestUnit(2, 1, core.NewHex(9, 3)),
	})

	assert.Greater(t, e.Evaluate(engaged, 0), e.Evaluate(distant, 0))
}

func TestEvaluator_WeightsAreTunable(t *testing.T) {
	// Zeroing the whole table makes any undecided position score flat zero,
	// proving the algorithm reads every coefficient from the table.
	e := NewEvaluator(Weights{})
	s := NewState(core.NewGrid(10, 8), []*core.Unit{
		newTestUnit(1, 0, core.NewHex(3, 3)),
		newTestUnit(2, 1, core.NewHex(4, 3)),
	})
	assert.Zero(t, e.Evaluate(s, 0))
}
