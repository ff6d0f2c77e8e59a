package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/testutil"
)

func newTestSearcher(seed int64, iterations int) *Searcher {
	return NewSearcher(game.DefaultWeights(), core.DefaultDamageParams(),
		WithIterations(iterations),
		WithTimeBudget(time.Hour), // let the iteration cap bind
		WithRNG(testutil.NewTestRNG(seed)),
		WithLogger(testutil.NopLogger()),
	)
}

func TestSearcher_AdjacentDuelPrefersAttack(t *testing.T) {
	s := newTestSearcher(17, 200)
	state := testutil.NewAdjacentDuelState()

	action, ok := s.ChooseAction(state, 0)
	require.True(t, ok)
	assert.True(t, action.IsAttack(), "got %s; an attack is always legal and strictly better here", action)
	assert.Equal(t, 2, action.TargetID, "the only enemy must be the target")
	assert.Equal(t, 1, action.UnitID)
}

func TestSearcher_DeterministicWithFixedSeed(t *testing.T) {
	run := func() core.Action {
		s := newTestSearcher(99, 150)
		action, ok := s.ChooseAction(testutil.NewDuelState(), 0)
		require.True(t, ok)
		return action
	}

	first := run()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, run(), "seeded searches must replay identically")
	}
}

func TestSearcher_TerminalStateShortCircuits(t *testing.T) {
	s := newTestSearcher(1, 100)
	state := game.NewState(core.NewGrid(8, 8), []*core.Unit{
		testutil.NewUnit(1, 0, core.NewHex(2, 2)),
	})

	_, ok := s.ChooseAction(state, 0)
	assert.False(t, ok, "a decided battle has no action to search for")
}

func TestSearcher_ZeroBudgetStillReturnsLegalAction(t *testing.T) {
	tests := []struct {
		name     string
		searcher *Searcher
	}{
		{"ZeroIterations", newTestSearcher(5, 0)},
		{"NegativeIterations", newTestSearcher(5, -3)},
		{"ZeroTimeBudget", NewSearcher(game.DefaultWeights(), core.DefaultDamageParams(),
			WithIterations(100),
			WithTimeBudget(0),
			WithRNG(testutil.NewTestRNG(5)),
			WithLogger(testutil.NopLogger()),
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := testutil.NewDuelState()
			action, ok := tt.searcher.ChooseAction(state, 0)
			require.True(t, ok, "an exhausted budget must still produce a fallback action")
			assert.Equal(t, 1, action.UnitID)
		})
	}
}

func TestSearcher_NoControlledUnits(t *testing.T) {
	s := newTestSearcher(1, 50)
	state := game.NewState(core.NewGrid(8, 8), []*core.Unit{
		testutil.NewUnit(1, 0, core.NewHex(2, 2)),
		testutil.NewUnit(2, 1, core.NewHex(5, 5)),
	})

	// Searching for a faction with no units degrades to no-action, not a panic.
	assert.NotPanics(t, func() {
		_, ok := s.ChooseAction(state, 7)
		assert.False(t, ok)
	})
}

func TestSearcher_SearchDoesNotMutateInput(t *testing.T) {
	s := newTestSearcher(23, 120)
	state := testutil.NewAdjacentDuelState()
	before := game.TakeSnapshot(state)

	_, ok := s.ChooseAction(state, 0)
	require.True(t, ok)

	assert.Equal(t, before, game.TakeSnapshot(state), "the searcher works on clones only")
}

func TestSearcher_DecidesWithinIterationCap(t *testing.T) {
	s := newTestSearcher(31, 30)
	state := testutil.NewDuelState()

	start := time.Now()
	_, ok := s.ChooseAction(state, 0)
	require.True(t, ok)
	assert.Less(t, time.Since(start), 30*time.Second, "a small iteration cap must terminate promptly")
}
