package engine

import (
	"log"
	"time"

	"github.com/hailam/chesscore/internal/board"
)

// Infinity bounds the root alpha-beta window; MaxPly bounds both the PV
// table and the iterative-deepening ceiling.
const (
	Infinity = 30000
	MaxPly   = 128

	// quiescenceMargin is the extra depth quiescence may extend beyond the
	// iteration's target depth before it gives up and returns the static
	// evaluation directly, per the search's safety margin.
	quiescenceMargin = 4
)

type pvTable struct {
	length [MaxPly + 1]int
	moves  [MaxPly + 1][MaxPly + 1]board.Move
}

// Searcher is a single-threaded negamax/alpha-beta search over a shared,
// ply-stacked move arena. One Searcher is reused across iterative-deepening
// iterations and across independent Search calls; Clear resets it between
// unrelated positions.
type Searcher struct {
	pos   *board.Position
	ml    *board.MoveList
	tt    *TranspositionTable
	nodes uint64
	pv    pvTable
	line  []board.Move
}

// NewSearcher returns a Searcher holding tt (the stub table; the search
// does not probe or populate it, see transposition.go).
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt, ml: board.NewMoveList()}
}

// Nodes returns the number of nodes visited by the most recent Search call.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// PV returns the principal variation found by the most recent Search call.
func (s *Searcher) PV() []board.Move {
	return append([]board.Move(nil), s.line...)
}

// Clear discards the principal variation that PV reports. Search itself
// always starts its move ordering without a PV hint, whether or not Clear
// was called.
func (s *Searcher) Clear() {
	s.line = nil
	s.tt.Clear()
}

// Search runs iterative deepening from depth 1 to maxDepth, stopping
// between iterations (never mid-iteration) once deadline has passed. A
// zero deadline means "no deadline": search runs every depth up to
// maxDepth unconditionally. It returns the best move and score found by
// the deepest completed iteration.
func (s *Searcher) Search(pos *board.Position, maxDepth int, deadline time.Time) (board.Move, int) {
	s.pos = pos
	s.nodes = 0

	var bestMove board.Move
	var bestScore int
	var prevPV []board.Move

	for depth := 1; depth <= maxDepth; depth++ {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}

		score := s.negamax(depth, 0, -Infinity, Infinity, prevPV)

		if s.pv.length[0] > 0 {
			bestMove = s.pv.moves[0][0]
			bestScore = score
			prevPV = append(prevPV[:0], s.pv.moves[0][:s.pv.length[0]]...)
		}

		log.Printf("[Search] depth=%d score=%d nodes=%d move=%s", depth, bestScore, s.nodes, bestMove.String())
	}

	s.line = prevPV
	return bestMove, bestScore
}

// negamax implements the per-node algorithm: open a ply, generate and
// reorder pseudo-legal moves (principal-variation move first, then loud
// moves before quiet), recurse through the legal ones, and score directly
// from InCheck when none turn out legal — that's how checkmate and
// stalemate are scored, using the legality count the loop already paid
// for instead of re-deriving it.
func (s *Searcher) negamax(depth, ply int, alpha, beta int, prevPV []board.Move) int {
	s.nodes++
	s.pv.length[ply] = ply

	if ply > 0 && s.pos.IsDrawUsing(s.ml) {
		return 0
	}

	if depth <= 0 {
		return s.quiescence(ply, alpha, beta, 0)
	}

	mover := s.pos.SideToMove

	s.ml.NewPly()
	s.pos.GeneratePseudoLegalMoves(s.ml)

	pvMove := board.NoMove
	if ply < len(prevPV) {
		pvMove = prevPV[ply]
	}
	s.ml.OrderPly(pvMove)

	n := s.ml.PlySize()
	legalCount := 0
	bestScore := -Infinity

	for i := 0; i < n; i++ {
		m := s.ml.Get(i)

		s.pos.Make(m)
		if !s.pos.WasMoveLegal(mover) {
			s.pos.Unmake(m)
			continue
		}
		legalCount++

		score := -s.negamax(depth-1, ply+1, -beta, -alpha, prevPV)
		s.pos.Unmake(m)

		if score > bestScore {
			bestScore = score
			if score > alpha {
				alpha = score
				s.recordPV(ply, m)
			}
		}

		if alpha >= beta {
			break
		}
	}

	s.ml.DropPly()

	if legalCount == 0 {
		// Already known from the loop above: no need to re-scan for
		// legal moves the way Evaluate would.
		if s.pos.InCheck() {
			return -MateScore
		}
		return 0
	}

	return bestScore
}

// quiescence extends the search through captures, promotions, and en
// passant only, until the position is quiet or the safety margin beyond
// the iteration's target depth is spent.
func (s *Searcher) quiescence(ply, alpha, beta, qDepth int) int {
	s.nodes++
	s.pv.length[ply] = ply

	if qDepth >= quiescenceMargin {
		return evaluateUsing(s.pos, s.ml)
	}

	standPat := evaluateUsing(s.pos, s.ml)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	mover := s.pos.SideToMove

	s.ml.NewPly()
	s.pos.GeneratePseudoLegalMoves(s.ml)
	n := s.ml.PlySize()

	result := alpha
	for i := 0; i < n; i++ {
		m := s.ml.Get(i)
		if m.IsQuiet() {
			continue
		}

		s.pos.Make(m)
		if !s.pos.WasMoveLegal(mover) {
			s.pos.Unmake(m)
			continue
		}

		score := -s.quiescence(ply+1, -beta, -result, qDepth+1)
		s.pos.Unmake(m)

		if score >= beta {
			result = beta
			break
		}
		if score > result {
			result = score
			s.recordPV(ply, m)
		}
	}

	s.ml.DropPly()
	return result
}

// recordPV sets the move at ply as the line's move at that depth and
// splices in the continuation already found one ply deeper.
func (s *Searcher) recordPV(ply int, m board.Move) {
	s.pv.moves[ply][ply] = m
	for j := ply + 1; j < s.pv.length[ply+1]; j++ {
		s.pv.moves[ply][j] = s.pv.moves[ply+1][j]
	}
	s.pv.length[ply] = s.pv.length[ply+1]
}
