// Package engine implements the alpha-beta search kernel and its static
// evaluation over an internal/board Position; the Monte-Carlo kernel lives
// in internal/mcts.
package engine

import (
	"github.com/hailam/chesscore/internal/board"
)

// Pawn-structure penalties and the mobility weight, from the evaluated
// side's perspective.
const (
	doubledPawnPenalty  = -40
	isolatedPawnPenalty = -40
	mobilityWeight      = 5
)

// MateScore is the magnitude returned when the side to move has been
// checkmated.
const MateScore = 100000

// Evaluate returns the position's static value from the perspective of the
// side to move: material plus pawn-structure penalties plus a pseudo-legal
// mobility differential, computed white-relative and then flipped for
// Black. A checkmated side to move scores -MateScore; stalemate scores 0 —
// this is also how the search's "no legal move" leaves are valued, since
// Evaluate performs its own legality check. Allocates a scratch MoveList
// for that check; the search's hot path uses evaluateUsing instead.
func Evaluate(pos *board.Position) int {
	return evaluate(pos, pos.HasLegalMoves())
}

// evaluateUsing is Evaluate's hot-path twin: ml is a reusable arena
// already owned by the caller, so the legality check behind a mate or
// stalemate score doesn't allocate.
func evaluateUsing(pos *board.Position, ml *board.MoveList) int {
	return evaluate(pos, pos.HasLegalMoveUsing(ml))
}

func evaluate(pos *board.Position, hasLegalMove bool) int {
	if !hasLegalMove {
		if pos.InCheck() {
			return -MateScore
		}
		return 0
	}

	score := pos.Material() + pawnStructureScore(pos) + mobilityScore(pos)

	if pos.SideToMove == board.Black {
		return -score
	}
	return score
}

// pawnStructureScore penalizes doubled and isolated pawns, white-relative.
func pawnStructureScore(pos *board.Position) int {
	var score int
	for _, c := range [2]board.Color{board.White, board.Black} {
		sign := 1
		if c == board.Black {
			sign = -1
		}

		pawns := pos.Pieces[c][board.Pawn]
		for file := 0; file < 8; file++ {
			onFile := pawns & board.FileMask[file]
			count := onFile.PopCount()
			if count == 0 {
				continue
			}
			if count > 1 {
				score += sign * doubledPawnPenalty * (count - 1)
			}

			var adjacent board.Bitboard
			if file > 0 {
				adjacent |= board.FileMask[file-1]
			}
			if file < 7 {
				adjacent |= board.FileMask[file+1]
			}
			if pawns&adjacent == 0 {
				score += sign * isolatedPawnPenalty * count
			}
		}
	}
	return score
}

// mobilityScore is +5 per pseudo-legal move differential, white-relative.
func mobilityScore(pos *board.Position) int {
	white := pseudoMoveCount(pos, board.White)
	black := pseudoMoveCount(pos, board.Black)
	return (white - black) * mobilityWeight
}

// pseudoMoveCount counts pseudo-legal destination squares for color c —
// cheap to compute (no make/unmake) and used only for the mobility term.
func pseudoMoveCount(pos *board.Position, c board.Color) int {
	occupied := pos.AllOccupied
	own := pos.Occupied[c]
	var count int

	knights := pos.Pieces[c][board.Knight]
	for knights != 0 {
		sq := knights.PopLSB()
		count += (board.KnightAttacks(sq) &^ own).PopCount()
	}

	bishops := pos.Pieces[c][board.Bishop]
	for bishops != 0 {
		sq := bishops.PopLSB()
		count += (board.BishopAttacks(sq, occupied) &^ own).PopCount()
	}

	rooks := pos.Pieces[c][board.Rook]
	for rooks != 0 {
		sq := rooks.PopLSB()
		count += (board.RookAttacks(sq, occupied) &^ own).PopCount()
	}

	queens := pos.Pieces[c][board.Queen]
	for queens != 0 {
		sq := queens.PopLSB()
		count += (board.QueenAttacks(sq, occupied) &^ own).PopCount()
	}

	count += (board.KingAttacks(pos.KingSquare[c]) &^ own).PopCount()

	pawns := pos.Pieces[c][board.Pawn]
	empty := ^occupied
	enemies := pos.Occupied[c.Other()]
	if c == board.White {
		push1 := pawns.North() & empty
		count += push1.PopCount()
		count += ((push1 & board.Rank3).North() & empty).PopCount()
		count += (pawns.NorthWest() & enemies).PopCount()
		count += (pawns.NorthEast() & enemies).PopCount()
	} else {
		push1 := pawns.South() & empty
		count += push1.PopCount()
		count += ((push1 & board.Rank6).South() & empty).PopCount()
		count += (pawns.SouthWest() & enemies).PopCount()
		count += (pawns.SouthEast() & enemies).PopCount()
	}

	return count
}
