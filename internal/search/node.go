package search

import (
	"math"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// node is one vertex of the search tree. It exclusively owns its state (deep
// cloned on expansion) and its children; parent is a non-owning back-pointer
// used only for UCB1's parent-visit lookup and for backpropagation. Sibling
// branches never mutate each other.
type node struct {
	parent        *node
	action        core.Action // edge label: the action that produced this node
	state         *game.State
	factionToMove int
	untried       []core.Action
	children      []*node
	visits        int
	score         float64
}

func newNode(parent *node, action core.Action, state *game.State, gen *game.Generator) *node {
	n := &node{
		parent:        parent,
		action:        action,
		state:         state,
		factionToMove: state.FactionToAct(),
	}
	if !state.IsGameOver() {
		n.untried = gen.LegalActionsForFaction(state, n.factionToMove)
	}
	return n
}

func (n *node) terminal() bool {
	return n.state.IsGameOver()
}

func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0
}

func (n *node) meanScore() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.score / float64(n.visits)
}

// ucb1 scores a child for selection. Unvisited children take infinite
// priority so every child is sampled at least once.
func ucb1(parent, child *node, exploration float64) float64 {
	if child.visits == 0 {
		return math.Inf(1)
	}
	return child.meanScore() + exploration*math.Sqrt(math.Log(float64(parent.visits))/float64(child.visits))
}

// bestChild returns the child maximizing UCB1.
func (n *node) bestChild(exploration float64) *node {
	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		score := ucb1(n, child, exploration)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// mostVisitedChild returns the child with the highest visit count. Visit
// count beats raw mean score as the final decision criterion since it
// correlates with confidence.
func (n *node) mostVisitedChild() *node {
	var best *node
	bestVisits := -1
	for _, child := range n.children {
		if child.visits > bestVisits {
			bestVisits = child.visits
			best = child
		}
	}
	return best
}
