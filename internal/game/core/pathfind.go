package core

// HexSet is a set of hex coordinates.
type HexSet map[Hex]struct{}

// NewHexSet creates a set from the given hexes.
func NewHexSet(hexes ...Hex) HexSet {
	s := make(HexSet, len(hexes))
	for _, h := range hexes {
		s[h] = struct{}{}
	}
	return s
}

// Contains checks if the set holds the given hex.
func (s HexSet) Contains(h Hex) bool {
	_, ok := s[h]
	return ok
}

// Add inserts the given hex into the set.
func (s HexSet) Add(h Hex) {
	s[h] = struct{}{}
}

// Distance returns the minimum number of steps between two hexes via
// breadth-first search over the open grid, or -1 if b is unreachable from a.
// Out-of-bounds coordinates are rejected, never clamped.
func (g Grid) Distance(a, b Hex) (int, error) {
	if !g.Contains(a) || !g.Contains(b) {
		return -1, ErrInvalidCoordinate
	}
	if a == b {
		return 0, nil
	}

	visited := map[Hex]struct{}{a: {}}
	frontier := []Hex{a}
	steps := 0

	for len(frontier) > 0 {
		steps++
		next := frontier[:0:0]
		for _, h := range frontier {
			for _, n := range g.Neighbors(h) {
				if _, seen := visited[n]; seen {
					continue
				}
				if n == b {
					return steps, nil
				}
				visited[n] = struct{}{}
				next = append(next, n)
			}
		}
		frontier = next
	}
	return -1, nil
}

// ShortestPath returns the hexes along a minimum-step path from a (exclusive)
// to b (inclusive), avoiding blocked hexes. The destination itself stays
// reachable even when it appears in the blocked set, so callers can preview a
// path onto an occupied target hex. Returns nil when no path exists.
func (g Grid) ShortestPath(a, b Hex, blocked HexSet) ([]Hex, error) {
	if !g.Contains(a) || !g.Contains(b) {
		return nil, ErrInvalidCoordinate
	}
	if a == b {
		return nil, nil
	}

	cameFrom := map[Hex]Hex{a: a}
	frontier := []Hex{a}

	for len(frontier) > 0 {
		next := frontier[:0:0]
		for _, h := range frontier {
			for _, n := range g.Neighbors(h) {
				if _, seen := cameFrom[n]; seen {
					continue
				}
				if blocked.Contains(n) && n != b {
					continue
				}
				cameFrom[n] = h
				if n == b {
					return rebuildPath(cameFrom, a, b), nil
				}
				next = append(next, n)
			}
		}
		frontier = next
	}
	return nil, nil
}

func rebuildPath(cameFrom map[Hex]Hex, a, b Hex) []Hex {
	var reversed []Hex
	for h := b; h != a; h = cameFrom[h] {
		reversed = append(reversed, h)
	}
	path := make([]Hex, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// MovementRange flood-fills outward from start for at most maxSteps steps and
// returns every reachable hex, excluding start itself. Blocked hexes cannot be
// entered but are not walls: the fill keeps expanding through them, so cells
// behind an occupied hex stay reachable within the step budget.
func (g Grid) MovementRange(start Hex, maxSteps int, blocked HexSet) (HexSet, error) {
	if !g.Contains(start) {
		return nil, ErrInvalidCoordinate
	}

	reachable := make(HexSet)
	visited := map[Hex]struct{}{start: {}}
	frontier := []Hex{start}

	for step := 0; step < maxSteps && len(frontier) > 0; step++ {
		next := frontier[:0:0]
		for _, h := range frontier {
			for _, n := range g.Neighbors(h) {
				if _, seen := visited[n]; seen {
					continue
				}
				visited[n] = struct{}{}
				if !blocked.Contains(n) {
					reachable.Add(n)
				}
				next = append(next, n)
			}
		}
		frontier = next
	}
	return reachable, nil
}
