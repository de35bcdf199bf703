// Package mcts implements the Monte-Carlo tree search kernel: the
// rollout-based counterpart to internal/engine's alpha-beta search, over
// the same internal/board Position.
package mcts

import (
	"math"
	"math/rand"
	"time"

	"github.com/hailam/chesscore/internal/board"
)

// DefaultExplorationWeight is a reasonable UCB1 exploration coefficient
// when the caller has no opinion.
const DefaultExplorationWeight = 1.0

// outEdge is one of a node's legal actions: how many times it has been
// selected and the last evaluation the subtree below it produced.
type outEdge struct {
	action board.Move
	visits uint64
	eval   float64
}

// node is one entry of the search graph, keyed by position hash rather
// than held by pointer: the same position reached by different move
// orders is the same node, and hash-keying is what makes that work
// without the graph's edges needing to own child pointers.
type node struct {
	count       uint64
	outEdges    []outEdge
	initialEval float64
	eval        float64
}

// newNode builds a node for pos, with one out-edge per legal move,
// seeded with a rollout evaluation already computed by the caller.
func newNode(pos *board.Position, ml *board.MoveList, initialEval float64) *node {
	ml.NewPly()
	pos.GeneratePseudoLegalMoves(ml)
	n := ml.PlySize()
	pseudo := append([]board.Move(nil), ml.CurrentPly()...)
	ml.DropPly()

	us := pos.SideToMove
	edges := make([]outEdge, 0, n)
	for _, m := range pseudo {
		pos.Make(m)
		legal := pos.WasMoveLegal(us)
		pos.Unmake(m)
		if legal {
			edges = append(edges, outEdge{action: m})
		}
	}

	return &node{count: 1, outEdges: edges, initialEval: initialEval, eval: initialEval}
}

// edge returns the out-edge for m. Panics if m isn't one of the node's
// legal actions — an internal-invariant violation, since every move a
// playout makes came from this same node's generation.
func (n *node) edge(m board.Move) *outEdge {
	for i := range n.outEdges {
		if n.outEdges[i].action == m {
			return &n.outEdges[i]
		}
	}
	panic("mcts: move not found among node's out-edges")
}

// bestAction returns the most-visited out-edge's move, or NoMove if the
// node has none (terminal position).
func (n *node) bestAction() board.Move {
	best := board.NoMove
	var bestVisits uint64
	seen := false
	for _, e := range n.outEdges {
		if !seen || e.visits > bestVisits {
			best, bestVisits, seen = e.action, e.visits, true
		}
	}
	return best
}

// Engine is the Monte-Carlo tree search kernel. It satisfies the same
// Select/Clear selection contract as internal/engine.Engine.
type Engine struct {
	nodes             map[uint64]*node
	explorationWeight float64
	rng               *rand.Rand
	ml                *board.MoveList
}

// NewEngine returns a ready-to-use Engine with an empty node table.
func NewEngine(explorationWeight float64) *Engine {
	return &Engine{
		nodes:             make(map[uint64]*node),
		explorationWeight: explorationWeight,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
		ml:                board.NewMoveList(),
	}
}

// Clear frees the node table between independent selections.
func (e *Engine) Clear() {
	e.nodes = make(map[uint64]*node)
}

// Select loops playouts from pos until deadline, then returns the move
// of the root's most-visited out-edge.
func (e *Engine) Select(pos *board.Position, deadline time.Time) board.Move {
	for time.Now().Before(deadline) {
		e.playout(pos)
	}

	n, ok := e.nodes[pos.HashValue()]
	if !ok {
		return board.NoMove
	}
	return n.bestAction()
}

// playout descends one selection path from pos: if pos isn't yet in the
// table, rolls out and inserts a fresh node; otherwise selects a child
// with UCB1, recurses, and backpropagates into pos's node. Returns the
// (possibly updated) evaluation of pos.
func (e *Engine) playout(pos *board.Position) float64 {
	hash := pos.HashValue()

	n, ok := e.nodes[hash]
	if !ok {
		eval := e.rollout(pos)
		e.nodes[hash] = newNode(pos, e.ml, eval)
		return eval
	}

	m, ok := e.selectUCB1(pos, n)
	if !ok {
		return n.eval
	}

	pos.Make(m)
	score := e.playout(pos)
	pos.Unmake(m)

	return e.updateEval(n, m, score)
}

// selectUCB1 picks the out-edge maximising t·Q(s,a) + c·sqrt(2·ln N(s) /
// n(s,a)), where t is +1 for white to move and -1 for black, so both
// players maximise white's score. Edges with zero visits are chosen
// first, by convention (their UCB1 term is +infinity).
func (e *Engine) selectUCB1(pos *board.Position, n *node) (board.Move, bool) {
	if len(n.outEdges) == 0 {
		return board.NoMove, false
	}

	t := 1.0
	if pos.SideToMove == board.Black {
		t = -1.0
	}

	best := board.NoMove
	bestScore := math.Inf(-1)
	for _, oe := range n.outEdges {
		var score float64
		if oe.visits == 0 {
			score = math.Inf(1)
		} else {
			score = t*oe.eval + e.explorationWeight*math.Sqrt(2*math.Log(float64(n.count))/float64(oe.visits))
		}
		if score > bestScore {
			bestScore, best = score, oe.action
		}
	}
	return best, true
}

// updateEval records a new sample for the edge pos played and
// recomputes the node's aggregated evaluation.
func (e *Engine) updateEval(n *node, m board.Move, moveEval float64) float64 {
	edge := n.edge(m)
	edge.visits++
	edge.eval = moveEval
	n.count++

	total := n.initialEval / float64(n.count)
	for _, oe := range n.outEdges {
		total += float64(oe.visits) / float64(n.count) * oe.eval
	}
	n.eval = total
	return n.eval
}

// rollout plays uniformly-random legal moves from a cloned position
// (cloning avoids an unmake chain as deep as the rollout itself) until
// insufficient material or no legal move remains, then scores the
// terminal position from white's perspective.
func (e *Engine) rollout(pos *board.Position) float64 {
	sim := pos.Copy()

	for {
		if sim.IsInsufficientMaterial() {
			return 0.5
		}
		m, ok := randomLegalMove(sim, e.ml, e.rng)
		if !ok {
			break
		}
		sim.Make(m)
	}

	return whiteScore(sim)
}

// whiteScore scores a position with no legal move left: 1.0 if black is
// checkmated, 0.0 if white is checkmated, 0.5 for stalemate.
func whiteScore(pos *board.Position) float64 {
	if !pos.InCheck() {
		return 0.5
	}
	if pos.SideToMove == board.White {
		return 0.0
	}
	return 1.0
}

// randomLegalMove draws pseudo-legal moves without replacement, in
// random order, until one turns out legal (or none do).
func randomLegalMove(pos *board.Position, ml *board.MoveList, rng *rand.Rand) (board.Move, bool) {
	ml.NewPly()
	pos.GeneratePseudoLegalMoves(ml)
	candidates := append([]board.Move(nil), ml.CurrentPly()...)
	ml.DropPly()

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	us := pos.SideToMove
	for _, m := range candidates {
		pos.Make(m)
		legal := pos.WasMoveLegal(us)
		pos.Unmake(m)
		if legal {
			return m, true
		}
	}
	return board.NoMove, false
}
