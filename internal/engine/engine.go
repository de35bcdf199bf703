package engine

import (
	"log"
	"time"

	"github.com/hailam/chesscore/internal/board"
)

// Difficulty maps to a search depth ceiling and a per-move time budget, the
// same knobs the selection contract already exposes, kept here only as a
// convenience for callers that think in three named tiers rather than raw
// numbers.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// DifficultyLimits gives the depth ceiling and move-time budget for a
// named difficulty.
var DifficultyLimits = map[Difficulty]struct {
	Depth    int
	MoveTime time.Duration
}{
	Easy:   {Depth: 3, MoveTime: 500 * time.Millisecond},
	Medium: {Depth: 7, MoveTime: 2 * time.Second},
	Hard:   {Depth: MaxPly, MoveTime: 5 * time.Second},
}

// SearchResult is what the evaluation facade (the eval subcommand in
// cmd/chessplay) consumes: the best
// move found and its score from the side to move's perspective.
type SearchResult struct {
	Move  board.Move
	Score int
	Nodes uint64
	PV    []board.Move
}

// Selector is the selection contract both search kernels implement: take
// a position and a deadline, return a best move. internal/mcts.Engine
// satisfies this too, by having the same two methods.
type Selector interface {
	Select(pos *board.Position, deadline time.Time) board.Move
	Clear()
}

// Engine is the alpha-beta search kernel. It implements the selection
// contract shared with the Monte-Carlo kernel: Select(pos, deadline) picks
// a move, Clear() resets state between unrelated positions. Everything
// else — worker pools, opening books, tablebases, NNUE, UCI time
// management — belongs to a different, much larger engine and is out of
// scope here.
type Engine struct {
	searcher   *Searcher
	difficulty Difficulty
}

// NewEngine returns a ready-to-use Engine at Medium difficulty.
func NewEngine() *Engine {
	log.Printf("[Engine] new alpha-beta engine, difficulty=Medium")
	return &Engine{
		searcher:   NewSearcher(NewTranspositionTable()),
		difficulty: Medium,
	}
}

// SetDifficulty changes the depth ceiling and move-time budget Select uses
// when the caller doesn't supply its own deadline.
func (e *Engine) SetDifficulty(d Difficulty) {
	log.Printf("[Engine] difficulty set to %v", d)
	e.difficulty = d
}

// Select runs iterative deepening up to the difficulty's depth ceiling,
// stopping at deadline (or, if deadline is zero, at the difficulty's own
// move-time budget measured from the call), and returns the best move
// found.
func (e *Engine) Select(pos *board.Position, deadline time.Time) board.Move {
	if deadline.IsZero() {
		deadline = time.Now().Add(DifficultyLimits[e.difficulty].MoveTime)
	}
	log.Printf("[Search] selecting for SideToMove=%v deadline=%v", pos.SideToMove, deadline)
	move, _ := e.searcher.Search(pos, DifficultyLimits[e.difficulty].Depth, deadline)
	return move
}

// SearchWithScore is like Select but also returns the score and node
// count, for callers (the evaluation facade) that want more than the
// bare move.
func (e *Engine) SearchWithScore(pos *board.Position, maxDepth int, deadline time.Time) SearchResult {
	move, score := e.searcher.Search(pos, maxDepth, deadline)
	return SearchResult{
		Move:  move,
		Score: score,
		Nodes: e.searcher.Nodes(),
		PV:    e.searcher.PV(),
	}
}

// Evaluate exposes the static evaluation of a position.
func (e *Engine) Evaluate(pos *board.Position) int {
	return Evaluate(pos)
}

// Clear resets search state (the PV reported for the last search and the
// transposition table). Select starts each search without a PV hint
// either way.
func (e *Engine) Clear() {
	e.searcher.Clear()
}

// Nodes returns the node count of the most recent Select/SearchWithScore
// call.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}
