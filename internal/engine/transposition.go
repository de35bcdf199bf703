package engine

import "github.com/hailam/chesscore/internal/board"

// TTFlag indicates the type of bound a transposition table entry carries.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // exact score
	TTLowerBound               // failed high (beta cutoff)
	TTUpperBound               // failed low
)

// TTEntry is what a transposition table would store for a position.
type TTEntry struct {
	BestMove board.Move
	Score    int
	Depth    int
	Flag     TTFlag
}

// TranspositionTable is an explicit stub: it never stores or returns
// anything. The Searcher holds one and clears it, but does not call Probe
// or Store. Wiring a real table only changes performance, not the
// result a fixed-depth search produces, so the core keeps this shape
// rather than committing to a particular cache policy.
type TranspositionTable struct{}

// NewTranspositionTable returns a stub table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{}
}

// Probe always reports a miss.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	return TTEntry{}, false
}

// Store is a no-op.
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove board.Move) {
}

// NewSearch exists so callers can mark a new search the way a real table's
// generation counter would; it does nothing here.
func (tt *TranspositionTable) NewSearch() {}

// Clear exists for interface parity with a real table; nothing to clear.
func (tt *TranspositionTable) Clear() {}

// AdjustScoreFromTT rebases a mate score read from the table onto the
// current ply distance from root.
func AdjustScoreFromTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT rebases a mate score onto a ply-independent distance
// before storing it.
func AdjustScoreToTT(score, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}
