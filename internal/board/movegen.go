package board

// castleSquares returns the four squares involved in castling to `side` for
// color `us`: king origin/destination, rook origin/destination.
func castleSquares(us Color, side CastleSide) (kingFrom, kingTo, rookFrom, rookTo Square) {
	rank := 0
	if us == Black {
		rank = 7
	}
	kingFrom = NewSquare(4, rank)
	if side == KingSide {
		kingTo = NewSquare(6, rank)
		rookFrom = NewSquare(7, rank)
		rookTo = NewSquare(5, rank)
	} else {
		kingTo = NewSquare(2, rank)
		rookFrom = NewSquare(0, rank)
		rookTo = NewSquare(3, rank)
	}
	return
}

func kingSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle
	}
	return BlackKingSideCastle
}

func queenSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteQueenSideCastle
	}
	return BlackQueenSideCastle
}

func epCaptureSquare(to Square, us Color) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

// GeneratePseudoLegalMoves appends every pseudo-legal move for the side to
// move into the current (already-open) ply of ml.
func (p *Position) GeneratePseudoLegalMoves(ml *MoveList) {
	us := p.SideToMove
	them := us.Other()
	occupied := p.AllOccupied
	enemies := p.Occupied[them]

	p.generatePawnMoves(ml, us, enemies, occupied)

	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		emitNonSliderMoves(ml, from, KnightAttacks(from)&^p.Occupied[us], enemies)
	}

	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		emitNonSliderMoves(ml, from, BishopAttacks(from, occupied)&^p.Occupied[us], enemies)
	}

	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		emitNonSliderMoves(ml, from, RookAttacks(from, occupied)&^p.Occupied[us], enemies)
	}

	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		emitNonSliderMoves(ml, from, QueenAttacks(from, occupied)&^p.Occupied[us], enemies)
	}

	from := p.KingSquare[us]
	emitNonSliderMoves(ml, from, KingAttacks(from)&^p.Occupied[us], enemies)

	p.generateCastlingMoves(ml, us)
}

func emitNonSliderMoves(ml *MoveList, from Square, targets, enemies Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		if enemies.IsSet(to) {
			ml.Insert(NewMove(from, to, Capture))
		} else {
			ml.Insert(NewMove(from, to, QuietMove))
		}
	}
}

func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = Rank1
		pushDir = -8
	}

	nonPromo := push1 &^ promotionRank
	for nonPromo != 0 {
		to := nonPromo.PopLSB()
		ml.Insert(NewMove(Square(int(to)-pushDir), to, QuietMove))
	}

	for push2 != 0 {
		to := push2.PopLSB()
		ml.Insert(NewMove(Square(int(to)-2*pushDir), to, DoublePawnPush))
	}

	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := nonPromoL.PopLSB()
		ml.Insert(NewMove(Square(int(to)-pushDir+1), to, Capture))
	}

	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := nonPromoR.PopLSB()
		ml.Insert(NewMove(Square(int(to)-pushDir-1), to, Capture))
	}

	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := promoPush.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir), to, false)
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := promoL.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir+1), to, true)
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := promoR.PopLSB()
		addPromotions(ml, Square(int(to)-pushDir-1), to, true)
	}

	if p.EnPassant != NoSquare {
		epBB := SquareBB(p.EnPassant)
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := epAttackers.PopLSB()
			ml.Insert(NewMove(from, p.EnPassant, EnPassant))
		}
	}
}

// addPromotions emits the four promotion variants in Queen, Rook, Bishop,
// Knight order.
func addPromotions(ml *MoveList, from, to Square, capture bool) {
	if capture {
		ml.Insert(NewMove(from, to, QueenPromotionCapture))
		ml.Insert(NewMove(from, to, RookPromotionCapture))
		ml.Insert(NewMove(from, to, BishopPromotionCapture))
		ml.Insert(NewMove(from, to, KnightPromotionCapture))
		return
	}
	ml.Insert(NewMove(from, to, QueenPromotion))
	ml.Insert(NewMove(from, to, RookPromotion))
	ml.Insert(NewMove(from, to, BishopPromotion))
	ml.Insert(NewMove(from, to, KnightPromotion))
}

// generateCastlingMoves emits castling moves. The squares between king and
// rook must be vacant (king-side f/g, queen-side b/c/d) and the three
// squares the king traverses must not be attacked.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()

	if p.CastlingRights&kingSideRight(us) != 0 {
		kingFrom, kingTo, _, _ := castleSquares(us, KingSide)
		rank := kingFrom.Rank()
		fSq, gSq := NewSquare(5, rank), NewSquare(6, rank)
		if p.AllOccupied&(SquareBB(fSq)|SquareBB(gSq)) == 0 {
			if !p.IsSquareAttacked(kingFrom, them) && !p.IsSquareAttacked(fSq, them) && !p.IsSquareAttacked(gSq, them) {
				ml.Insert(NewMove(kingFrom, kingTo, KingCastle))
			}
		}
	}

	if p.CastlingRights&queenSideRight(us) != 0 {
		kingFrom, kingTo, _, _ := castleSquares(us, QueenSide)
		rank := kingFrom.Rank()
		bSq, cSq, dSq := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)
		if p.AllOccupied&(SquareBB(bSq)|SquareBB(cSq)|SquareBB(dSq)) == 0 {
			if !p.IsSquareAttacked(kingFrom, them) && !p.IsSquareAttacked(dSq, them) && !p.IsSquareAttacked(cSq, them) {
				ml.Insert(NewMove(kingFrom, kingTo, QueenCastle))
			}
		}
	}
}

// Make applies m to the position, pushing an IrreversibleInfo frame and
// keeping the hash in sync. Panics if there is no piece of the side to
// move at the origin square (an internal-invariant violation).
func (p *Position) Make(m Move) {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	code := m.Code()

	movedPiece := p.PieceAt(from)
	if movedPiece == NoPiece || movedPiece.Color() != us {
		panic("board: Make called with no piece of the side to move at the origin square")
	}
	pt := movedPiece.Type()

	var captured Piece = NoPiece
	if code == EnPassant {
		captured = NewPiece(Pawn, them)
	} else if code.IsCapture() {
		captured = p.PieceAt(to)
	}

	p.stack = append(p.stack, IrreversibleInfo{
		HalfMove:  p.HalfMoveClock,
		EnPassant: p.EnPassant,
		Flags:     p.CastlingRights,
		Captured:  captured,
	})

	p.clearEnPassant()

	if side, ok := code.AsCastle(); ok {
		kingFrom, kingTo, rookFrom, rookTo := castleSquares(us, side)
		p.movePieceHashed(us, King, kingFrom, kingTo)
		p.movePieceHashed(us, Rook, rookFrom, rookTo)
		p.setCastleRight(kingSideRight(us), false)
		p.setCastleRight(queenSideRight(us), false)
	} else {
		if code == EnPassant {
			p.removePieceOfType(them, Pawn, epCaptureSquare(to, us))
		} else if code.IsCapture() {
			p.removePieceOfType(them, captured.Type(), to)
		}

		p.movePieceHashed(us, pt, from, to)

		if pt == King {
			p.setCastleRight(kingSideRight(us), false)
			p.setCastleRight(queenSideRight(us), false)
		}

		if code == DoublePawnPush {
			p.setEnPassant(Square((int(from) + int(to)) / 2))
		}

		if promoPt, ok := code.AsPromotion(); ok {
			p.removePieceOfType(us, Pawn, to)
			p.addPiece(us, promoPt, to)
		}
	}

	if from == A1 || to == A1 {
		p.setCastleRight(WhiteQueenSideCastle, false)
	}
	if from == H1 || to == H1 {
		p.setCastleRight(WhiteKingSideCastle, false)
	}
	if from == A8 || to == A8 {
		p.setCastleRight(BlackQueenSideCastle, false)
	}
	if from == H8 || to == H8 {
		p.setCastleRight(BlackKingSideCastle, false)
	}

	// Per the source's halfmove semantics, this is a ply counter incremented
	// unconditionally, not reset on pawn moves/captures.
	p.HalfMoveClock++

	p.toggleColor()
	p.UpdateCheckers()
}

// Unmake reverses m using the most recently pushed IrreversibleInfo. Panics
// if the stack is empty.
func (p *Position) Unmake(m Move) {
	if len(p.stack) == 0 {
		panic("board: Unmake called with an empty irreversible-info stack")
	}
	info := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	p.toggleColor()
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	code := m.Code()

	for _, right := range [4]CastlingRights{WhiteKingSideCastle, WhiteQueenSideCastle, BlackKingSideCastle, BlackQueenSideCastle} {
		want := info.Flags&right != 0
		have := p.CastlingRights&right != 0
		if want != have {
			p.setCastleRight(right, want)
		}
	}

	p.clearEnPassant()
	if info.EnPassant != NoSquare {
		p.setEnPassant(info.EnPassant)
	}

	if side, ok := code.AsCastle(); ok {
		kingFrom, kingTo, rookFrom, rookTo := castleSquares(us, side)
		p.movePieceHashed(us, King, kingTo, kingFrom)
		p.movePieceHashed(us, Rook, rookTo, rookFrom)
	} else {
		if promoPt, ok := code.AsPromotion(); ok {
			p.removePieceOfType(us, promoPt, to)
			p.addPiece(us, Pawn, from)
		} else {
			pt := p.PieceAt(to).Type()
			p.movePieceHashed(us, pt, to, from)
		}

		if code == EnPassant {
			p.addPiece(them, Pawn, epCaptureSquare(to, us))
		} else if info.Captured != NoPiece {
			p.addPiece(them, info.Captured.Type(), to)
		}
	}

	p.HalfMoveClock = info.HalfMove
	p.UpdateCheckers()
}

// WasMoveLegal reports whether the king of moverColor (the side that just
// made a move) is safe now that SideToMove has been toggled to the
// opponent. Call immediately after Make.
func (p *Position) WasMoveLegal(moverColor Color) bool {
	return !p.IsSquareAttacked(p.KingSquare[moverColor], p.SideToMove)
}

// GenerateLegalMoves returns a private MoveList holding only legal moves
// for the side to move. Convenience wrapper for tests and callers outside
// the hot search path; the search itself drives GeneratePseudoLegalMoves
// directly against its own shared, ply-stacked arena.
func (p *Position) GenerateLegalMoves() *MoveList {
	scratch := NewMoveList()
	scratch.NewPly()
	p.GeneratePseudoLegalMoves(scratch)
	pseudo := append([]Move(nil), scratch.CurrentPly()...)

	us := p.SideToMove
	result := NewMoveList()
	result.NewPly()
	for _, m := range pseudo {
		p.Make(m)
		legal := p.WasMoveLegal(us)
		p.Unmake(m)
		if legal {
			result.Insert(m)
		}
	}
	return result
}

// HasLegalMoves returns true if the side to move has any legal move.
// Allocates a scratch arena; callers on a hot search path should use
// HasLegalMoveUsing with their own reusable MoveList instead.
func (p *Position) HasLegalMoves() bool {
	return p.HasLegalMoveUsing(NewMoveList())
}

// HasLegalMoveUsing is HasLegalMoves without the allocation: it opens a
// ply on the caller's own MoveList instead of a fresh arena, and stops
// at the first legal move found.
func (p *Position) HasLegalMoveUsing(ml *MoveList) bool {
	ml.NewPly()
	p.GeneratePseudoLegalMoves(ml)
	n := ml.PlySize()

	us := p.SideToMove
	found := false
	for i := 0; i < n; i++ {
		m := ml.Get(i)
		p.Make(m)
		legal := p.WasMoveLegal(us)
		p.Unmake(m)
		if legal {
			found = true
			break
		}
	}

	ml.DropPly()
	return found
}

// IsCheckmate returns true if the position is checkmate.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsDraw returns true if the position is a draw by stalemate or
// insufficient material. Allocates via IsStalemate's HasLegalMoves;
// callers on a hot search path should use IsDrawUsing instead.
func (p *Position) IsDraw() bool {
	if p.IsStalemate() {
		return true
	}
	return p.IsInsufficientMaterial()
}

// IsDrawUsing is IsDraw without the allocation, threading ml through to
// HasLegalMoveUsing.
func (p *Position) IsDrawUsing(ml *MoveList) bool {
	if p.IsInsufficientMaterial() {
		return true
	}
	return !p.InCheck() && !p.HasLegalMoveUsing(ml)
}
