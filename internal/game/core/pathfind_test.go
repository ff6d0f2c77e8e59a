package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_Distance_SelfIsZero(t *testing.T) {
	g := NewGrid(8, 8)
	d, err := g.Distance(Hex{3, 3}, Hex{3, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestGrid_Distance_Adjacent(t *testing.T) {
	g := NewGrid(8, 8)
	for _, n := range g.Neighbors(Hex{3, 3}) {
		d, err := g.Distance(Hex{3, 3}, n)
		require.NoError(t, err)
		assert.Equal(t, 1, d, "distance to direct neighbor %s", n)
	}
}

func TestGrid_Distance_Symmetric(t *testing.T) {
	g := NewGrid(6, 5)
	for colA := 0; colA < 6; colA++ {
		for rowA := 0; rowA < 5; rowA++ {
			for colB := 0; colB < 6; colB++ {
				for rowB := 0; rowB < 5; rowB++ {
					a := Hex{colA, rowA}
					b := Hex{colB, rowB}
					dAB, err := g.Distance(a, b)
					require.NoError(t, err)
					dBA, err := g.Distance(b, a)
					require.NoError(t, err)
					assert.Equal(t, dAB, dBA, "distance not symmetric between %s and %s", a, b)
				}
			}
		}
	}
}

func TestGrid_Distance_RejectsOutOfBounds(t *testing.T) {
	g := NewGrid(8, 8)
	tests := []struct {
		name string
		a, b Hex
	}{
		{"FromOutOfBounds", Hex{-1, 0}, Hex{2, 2}},
		{"ToOutOfBounds", Hex{2, 2}, Hex{8, 0}},
		{"BothOutOfBounds", Hex{-1, -1}, Hex{99, 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Distance(tt.a, tt.b)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestGrid_ShortestPath_StraightLine(t *testing.T) {
	g := NewGrid(8, 8)
	path, err := g.ShortestPath(Hex{1, 2}, Hex{4, 2}, nil)
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, Hex{4, 2}, path[len(path)-1], "path must end at the destination")
	assert.NotContains(t, path, Hex{1, 2}, "path excludes the start hex")
}

func TestGrid_ShortestPath_StepsAreAdjacent(t *testing.T) {
	g := NewGrid(8, 8)
	start := Hex{0, 0}
	path, err := g.ShortestPath(start, Hex{6, 5}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	prev := start
	for _, h := range path {
		assert.Contains(t, g.Neighbors(prev), h, "step from %s to %s is not adjacent", prev, h)
		prev = h
	}
}

func TestGrid_ShortestPath_AvoidsBlocked(t *testing.T) {
	g := NewGrid(8, 8)
	blocked := NewHexSet(Hex{2, 2})
	path, err := g.ShortestPath(Hex{1, 2}, Hex{4, 2}, blocked)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.NotContains(t, path, Hex{2, 2})
	assert.Equal(t, Hex{4, 2}, path[len(path)-1])
}

func TestGrid_ShortestPath_BlockedDestinationStaysReachable(t *testing.T) {
	// The resolver previews paths onto occupied target hexes, so a blocked
	// destination is still enterable.
	g := NewGrid(8, 8)
	dest := Hex{3, 2}
	path, err := g.ShortestPath(Hex{1, 2}, dest, NewHexSet(dest))
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, dest, path[len(path)-1])
}

func TestGrid_ShortestPath_NoPath(t *testing.T) {
	// Wall off a 1-wide grid: a single blocked hex between start and goal.
	g := NewGrid(1, 5)
	path, err := g.ShortestPath(Hex{0, 0}, Hex{0, 4}, NewHexSet(Hex{0, 2}))
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestGrid_MovementRange_ZeroStepsIsEmpty(t *testing.T) {
	g := NewGrid(8, 8)
	reachable, err := g.MovementRange(Hex{3, 3}, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, reachable)
}

func TestGrid_MovementRange_ExcludesStart(t *testing.T) {
	g := NewGrid(8, 8)
	reachable, err := g.MovementRange(Hex{3, 3}, 2, nil)
	require.NoError(t, err)
	assert.False(t, reachable.Contains(Hex{3, 3}))
}

func TestGrid_MovementRange_OneStepEqualsNeighbors(t *testing.T) {
	g := NewGrid(8, 8)
	reachable, err := g.MovementRange(Hex{3, 3}, 1, nil)
	require.NoError(t, err)

	neighbors := g.Neighbors(Hex{3, 3})
	assert.Len(t, reachable, len(neighbors))
	for _, n := range neighbors {
		assert.True(t, reachable.Contains(n), "missing neighbor %s", n)
	}
}

func TestGrid_MovementRange_MonotonicInSteps(t *testing.T) {
	g := NewGrid(10, 10)
	prevSize := 0
	for steps := 0; steps <= 6; steps++ {
		reachable, err := g.MovementRange(Hex{4, 4}, steps, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(reachable), prevSize, "range shrank at %d steps", steps)
		prevSize = len(reachable)
	}
}

func TestGrid_MovementRange_BlockedNotEnterableButTraversable(t *testing.T) {
	// Blocked hexes are pruned from the result, not turned into walls: on a
	// 1-wide strip the fill passes through the blocked hex and the cell
	// behind it stays reachable within the step budget.
	g := NewGrid(1, 5)
	blocked := NewHexSet(Hex{0, 2})
	reachable, err := g.MovementRange(Hex{0, 0}, 4, blocked)
	require.NoError(t, err)

	assert.False(t, reachable.Contains(Hex{0, 2}), "blocked hex must not be enterable")
	assert.True(t, reachable.Contains(Hex{0, 3}), "cell behind blocked hex must stay reachable")
	assert.True(t, reachable.Contains(Hex{0, 4}))
}

func TestGrid_MovementRange_RejectsOutOfBounds(t *testing.T) {
	g := NewGrid(8, 8)
	_, err := g.MovementRange(Hex{-1, 0}, 3, nil)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
