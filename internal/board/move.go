package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:  from square (0-63)
// bits 6-11: to square (0-63)
// bits 12-15: move code (see MoveCode)
type Move uint16

// MoveCode enumerates every kind of move the generator can emit. Ordinal
// values match the discriminants used by the reference generator;
// IsQuiet/IsCapture/AsPromotion/AsCastle test membership by value.
type MoveCode uint8

const (
	QuietMove MoveCode = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	KnightPromotionCapture
	BishopPromotionCapture
	RookPromotionCapture
	QueenPromotionCapture
)

// NoMove represents an invalid or null move.
const NoMove Move = 0

const (
	fromMask = 0x003F
	toShift  = 6
	toMask   = 0x0FC0
	codeShift = 12
)

// NewMove packs from, to and code into a Move.
func NewMove(from, to Square, code MoveCode) Move {
	return Move(from) | Move(to)<<toShift | Move(code)<<codeShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Code returns the move's MoveCode.
func (m Move) Code() MoveCode {
	return MoveCode(m >> codeShift)
}

// IsQuiet is true for the four non-capturing, non-promoting move kinds.
func (c MoveCode) IsQuiet() bool {
	return c == QuietMove || c == DoublePawnPush || c == KingCastle || c == QueenCastle
}

// IsCapture is true for any move that removes an opposing piece.
func (c MoveCode) IsCapture() bool {
	switch c {
	case Capture, EnPassant, KnightPromotionCapture, BishopPromotionCapture,
		RookPromotionCapture, QueenPromotionCapture:
		return true
	default:
		return false
	}
}

// AsPromotion returns the promoted-to piece type and true if c promotes.
func (c MoveCode) AsPromotion() (PieceType, bool) {
	switch c {
	case KnightPromotion, KnightPromotionCapture:
		return Knight, true
	case BishopPromotion, BishopPromotionCapture:
		return Bishop, true
	case RookPromotion, RookPromotionCapture:
		return Rook, true
	case QueenPromotion, QueenPromotionCapture:
		return Queen, true
	default:
		return NoPieceType, false
	}
}

// AsCastle returns the castling side and true if c is a castling move.
func (c MoveCode) AsCastle() (CastleSide, bool) {
	switch c {
	case KingCastle:
		return KingSide, true
	case QueenCastle:
		return QueenSide, true
	default:
		return KingSide, false
	}
}

// CastleSide distinguishes king-side from queen-side castling.
type CastleSide uint8

const (
	KingSide CastleSide = iota
	QueenSide
)

func (c Move) IsQuiet() bool     { return c.Code().IsQuiet() }
func (c Move) IsCapture() bool   { return c.Code().IsCapture() }
func (c Move) IsPromotion() bool { _, ok := c.Code().AsPromotion(); return ok }
func (c Move) IsEnPassant() bool { return c.Code() == EnPassant }
func (c Move) IsCastling() bool  { _, ok := c.Code().AsCastle(); return ok }

// Promotion returns the promoted-to piece type; only meaningful if IsPromotion().
func (m Move) Promotion() PieceType {
	pt, _ := m.Code().AsPromotion()
	return pt
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if pt, ok := m.Code().AsPromotion(); ok {
		s += string(pt.Char())
	}

	return s
}

// MatchesPerftString reports whether a "<from><to>" string (optionally with
// a trailing promotion letter, ignored) identifies this move. Only from/to
// participate in the comparison; promotion disambiguation is the caller's.
func (m Move) MatchesPerftString(s string) bool {
	if len(s) < 4 {
		return false
	}
	return m.From().String() == s[0:2] && m.To().String() == s[2:4]
}

// ParseMove parses a UCI format move string against a position, inferring
// the MoveCode from context (capture/en-passant/castle/promotion/quiet).
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	pt := piece.Type()
	isCapture := pos.PieceAt(to) != NoPiece

	if len(s) == 5 {
		var promoPt PieceType
		switch s[4] {
		case 'n':
			promoPt = Knight
		case 'b':
			promoPt = Bishop
		case 'r':
			promoPt = Rook
		case 'q':
			promoPt = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		code := promotionCode(promoPt, isCapture)
		return NewMove(from, to, code), nil
	}

	if pt == King && abs(int(to)-int(from)) == 2 {
		if to.File() == 6 {
			return NewMove(from, to, KingCastle), nil
		}
		return NewMove(from, to, QueenCastle), nil
	}

	if pt == Pawn && to == pos.EnPassant && pos.EnPassant != NoSquare {
		return NewMove(from, to, EnPassant), nil
	}

	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		return NewMove(from, to, DoublePawnPush), nil
	}

	if isCapture {
		return NewMove(from, to, Capture), nil
	}
	return NewMove(from, to, QuietMove), nil
}

func promotionCode(pt PieceType, capture bool) MoveCode {
	switch pt {
	case Knight:
		if capture {
			return KnightPromotionCapture
		}
		return KnightPromotion
	case Bishop:
		if capture {
			return BishopPromotionCapture
		}
		return BishopPromotion
	case Rook:
		if capture {
			return RookPromotionCapture
		}
		return RookPromotion
	default:
		if capture {
			return QueenPromotionCapture
		}
		return QueenPromotion
	}
}
