// Package search implements the Monte Carlo Tree Search planner that picks
// one action for a faction from a battle snapshot. The core loop is the
// classic selection / expansion / simulation / backpropagation cycle under a
// wall-clock budget with an iteration ceiling.
package search

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// Search defaults. All of them are overridable through options.
const (
	DefaultExploration      = 1.41
	DefaultIterationCap     = 5000
	DefaultTimeBudget       = 1800 * time.Millisecond
	DefaultRolloutMoveCap   = 50
	DefaultAttackPreference = 0.9
	DefaultGreedyRatio      = 0.8

	// scoreScale feeds tanh(score/scoreScale) so no single rollout can
	// dominate the accumulated node statistics.
	scoreScale = 1000.0
)

// Option configures a Searcher.
type Option func(*Searcher)

// WithExploration sets the UCB1 exploration constant.
func WithExploration(c float64) Option {
	return func(s *Searcher) {
		if c > 0 {
			s.exploration = c
		}
	}
}

// WithIterations sets the hard iteration cap.
func WithIterations(n int) Option {
	return func(s *Searcher) {
		s.maxIterations = n
	}
}

// WithTimeBudget sets the wall-clock budget.
func WithTimeBudget(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeBudget = d
	}
}

// WithRolloutMoveCap sets the half-move limit per playout.
func WithRolloutMoveCap(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.rolloutMoveCap = n
		}
	}
}

// WithRolloutPolicy tunes the playout biases: the probability of taking an
// attack when one exists, and the share of greedy (vs uniformly random) picks.
func WithRolloutPolicy(attackPreference, greedyRatio float64) Option {
	return func(s *Searcher) {
		if attackPreference >= 0 && attackPreference <= 1 {
			s.attackPreference = attackPreference
		}
		if greedyRatio >= 0 && greedyRatio <= 1 {
			s.greedyRatio = greedyRatio
		}
	}
}

// WithRNG sets the single random source used for damage rolls, untried-action
// picks, and rollout policy draws. Seeding it makes a search run reproducible.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// Searcher runs MCTS over battle states. The algorithm is sequential: one
// iteration finishes before the next begins, and the tree is discarded after
// every decision. Callers wanting a non-blocking search run ChooseAction on
// their own goroutine.
type Searcher struct {
	exploration      float64
	maxIterations    int
	timeBudget       time.Duration
	rolloutMoveCap   int
	attackPreference float64
	greedyRatio      float64

	rng       *rand.Rand
	logger    zerolog.Logger
	gen       *game.Generator
	evaluator *game.Evaluator
}

// NewSearcher creates a planner with the given evaluation weights and damage
// tuning. The damage formula here must match the live board's so rollouts
// stay a faithful proxy of real combat.
func NewSearcher(weights game.Weights, damage core.DamageParams, options ...Option) *Searcher {
	s := &Searcher{
		exploration:      DefaultExploration,
		maxIterations:    DefaultIterationCap,
		timeBudget:       DefaultTimeBudget,
		rolloutMoveCap:   DefaultRolloutMoveCap,
		attackPreference: DefaultAttackPreference,
		greedyRatio:      DefaultGreedyRatio,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:           zerolog.Nop(),
		evaluator:        game.NewEvaluator(weights),
	}
	for _, option := range options {
		option(s)
	}
	resolver := core.NewCombatResolver(damage, s.rng, s.logger)
	s.gen = game.NewGenerator(resolver, s.logger)
	return s
}

// ChooseAction searches from the given state and returns the best action for
// the faction. The second return is false only when the faction has no unit
// left to act for, or the state is already terminal.
func (s *Searcher) ChooseAction(root *game.State, factionID int) (core.Action, bool) {
	logger := s.logger.With().
		Str("component", "Searcher").
		Str("search_id", uuid.NewString()).
		Int("faction_id", factionID).
		Logger()

	if root.IsGameOver() {
		logger.Debug().Msg("search invoked on terminal state")
		return core.Action{}, false
	}

	// The root always belongs to the requested faction, regardless of what
	// the turn policy would derive from the raw state.
	rootNode := &node{state: root.Clone(), factionToMove: factionID}
	rootNode.untried = s.gen.LegalActionsForFaction(rootNode.state, factionID)

	start := time.Now()
	iterations := 0
	for {
		// A zero or negative budget on either axis ends the search before the
		// first iteration; the fallback in decide still yields a legal action.
		if s.maxIterations <= 0 || iterations >= s.maxIterations {
			break
		}
		if s.timeBudget <= 0 || time.Since(start) >= s.timeBudget {
			break
		}

		selected := s.selectNode(rootNode)
		expanded := s.expand(selected)
		score := s.rollout(expanded, factionID)
		s.backpropagate(expanded, score, factionID)
		iterations++
	}

	action, ok := s.decide(rootNode, factionID)
	logger.Info().
		Int("iterations", iterations).
		Dur("elapsed", time.Since(start)).
		Int("root_children", len(rootNode.children)).
		Str("action", action.String()).
		Bool("found", ok).
		Msg("search complete")
	return action, ok
}

// selectNode descends by UCB1 until it reaches a node that is terminal or
// still has untried actions.
func (s *Searcher) selectNode(root *node) *node {
	cur := root
	for !cur.terminal() && cur.fullyExpanded() && len(cur.children) > 0 {
		next := cur.bestChild(s.exploration)
		if next == nil {
			break
		}
		cur = next
	}
	return cur
}

// expand plays one untried action (uniformly chosen) into a cloned state and
// attaches the resulting child. Terminal nodes come back unchanged; a fully
// expanded node falls back to a random existing child.
func (s *Searcher) expand(n *node) *node {
	if n.terminal() {
		return n
	}
	if len(n.untried) == 0 {
		if len(n.children) > 0 {
			return n.children[s.rng.Intn(len(n.children))]
		}
		return n
	}

	i := s.rng.Intn(len(n.untried))
	action := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	childState := n.state.Clone()
	if err := s.gen.Apply(childState, action); err != nil {
		s.logger.Debug().Err(err).Str("action", action.String()).Msg("expansion applied stale action")
	}

	child := newNode(n, action, childState, s.gen)
	n.children = append(n.children, child)
	return child
}

// rollout plays the node's state forward with the biased policy until the
// game is decided, moves run out, or the move cap is hit, then scores the
// final position from the root faction's perspective.
func (s *Searcher) rollout(n *node, rootFaction int) float64 {
	state := n.state.Clone()
	for move := 0; move < s.rolloutMoveCap; move++ {
		if state.IsGameOver() {
			break
		}
		faction := state.FactionToAct()
		actions := s.gen.LegalActionsForFaction(state, faction)
		if len(actions) == 0 {
			break
		}
		action := s.pickRolloutAction(state, actions)
		if err := s.gen.Apply(state, action); err != nil {
			break
		}
	}
	return s.evaluator.Evaluate(state, rootFaction)
}

// backpropagate walks to the root accumulating the saturated rollout score,
// negated at nodes where the opponent is to move (zero-sum framing).
func (s *Searcher) backpropagate(n *node, score float64, rootFaction int) {
	normalized := math.Tanh(score / scoreScale)
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		if cur.factionToMove == rootFaction {
			cur.score += normalized
		} else {
			cur.score -= normalized
		}
	}
}

// decide picks the most visited root child, falling back to a random untried
// action, then to a pass for any controlled unit, before giving up.
func (s *Searcher) decide(root *node, factionID int) (core.Action, bool) {
	if best := root.mostVisitedChild(); best != nil {
		return best.action, true
	}
	if len(root.untried) > 0 {
		return root.untried[s.rng.Intn(len(root.untried))], true
	}
	if units := root.state.UnitsOfFaction(factionID); len(units) > 0 {
		return core.NewPass(units[0].ID), true
	}
	return core.Action{}, false
}
