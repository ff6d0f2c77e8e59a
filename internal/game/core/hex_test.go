package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHex(t *testing.T) {
	h := NewHex(3, 5)
	assert.Equal(t, 3, h.Col)
	assert.Equal(t, 5, h.Row)
}

func TestGrid_Contains(t *testing.T) {
	g := NewGrid(10, 8)
	tests := []struct {
		name string
		hex  Hex
		want bool
	}{
		{"Origin", Hex{0, 0}, true},
		{"Middle", Hex{5, 4}, true},
		{"BottomRight", Hex{9, 7}, true},
		{"ColTooLarge", Hex{10, 0}, false},
		{"RowTooLarge", Hex{0, 8}, false},
		{"NegativeCol", Hex{-1, 3}, false},
		{"NegativeRow", Hex{3, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Contains(tt.hex))
		})
	}
}

func TestGrid_Neighbors_EvenRow(t *testing.T) {
	g := NewGrid(10, 10)
	neighbors := g.Neighbors(Hex{4, 4})
	require.Len(t, neighbors, 6)

	expected := []Hex{{5, 4}, {3, 4}, {4, 3}, {3, 3}, {4, 5}, {3, 5}}
	assert.ElementsMatch(t, expected, neighbors)
}

func TestGrid_Neighbors_OddRow(t *testing.T) {
	g := NewGrid(10, 10)
	neighbors := g.Neighbors(Hex{4, 5})
	require.Len(t, neighbors, 6)

	expected := []Hex{{5, 5}, {3, 5}, {5, 4}, {4, 4}, {5, 6}, {4, 6}}
	assert.ElementsMatch(t, expected, neighbors)
}

func TestGrid_Neighbors_CornerIsBoundsFiltered(t *testing.T) {
	g := NewGrid(10, 10)
	neighbors := g.Neighbors(Hex{0, 0})
	// Even-row corner: E, SE are in bounds, NW/W/NE/SW are not.
	assert.ElementsMatch(t, []Hex{{1, 0}, {0, 1}}, neighbors)
}

func TestGrid_Neighbors_Reciprocal(t *testing.T) {
	// If b is a neighbor of a, then a must be a neighbor of b.
	g := NewGrid(6, 6)
	for col := 0; col < 6; col++ {
		for row := 0; row < 6; row++ {
			a := Hex{col, row}
			for _, b := range g.Neighbors(a) {
				assert.Contains(t, g.Neighbors(b), a, "neighbor relation not symmetric between %s and %s", a, b)
			}
		}
	}
}
