package board

// Zobrist hash keys, generated once at process start from a fixed seed so
// hashes are reproducible across runs and processes. Read-only thereafter
// and safe to share across any number of Position values.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [8]uint64        // one per file
	zobristCastleRight [4]uint64       // one per individual castling right bit
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// prng is a small xorshift64* generator used only to seed the Zobrist
// tables deterministically; it is not used anywhere in search.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

const zobristSeed = 0xDEADBEEF

func initZobrist() {
	rng := newPRNG(zobristSeed)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := range zobristCastleRight {
		zobristCastleRight[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// castleRightIndex maps a single castling-right bit to its Zobrist word.
func castleRightIndex(right CastlingRights) int {
	switch right {
	case WhiteKingSideCastle:
		return 0
	case WhiteQueenSideCastle:
		return 1
	case BlackKingSideCastle:
		return 2
	default:
		return 3
	}
}

// Hasher incrementally maintains a position hash through the exact sequence
// of mutations Position.make/unmake apply. NoopHasher costs nothing per
// move (used by perft); ZobristHasher maintains a real running XOR (used by
// the search engines). Dispatched dynamically so Position can hold either
// without the caller's code changing.
type Hasher interface {
	Init(p *Position)
	ConsumePiece(c Color, pt PieceType, sq Square)
	ConsumeCastleRight(right CastlingRights)
	ConsumeColor()
	ConsumeEnPassant(file int)
	Get() uint64
}

// NoopHasher implements Hasher with no-ops, for callers (perft) that never
// read the hash.
type NoopHasher struct{}

func (NoopHasher) Init(*Position)                        {}
func (NoopHasher) ConsumePiece(Color, PieceType, Square)  {}
func (NoopHasher) ConsumeCastleRight(CastlingRights)      {}
func (NoopHasher) ConsumeColor()                          {}
func (NoopHasher) ConsumeEnPassant(int)                   {}
func (NoopHasher) Get() uint64 {
	panic("board: NoopHasher.Get called — hash was never requested to be maintained")
}

// ZobristHasher maintains a real incremental hash via XOR.
type ZobristHasher struct {
	hash uint64
}

func (z *ZobristHasher) Init(p *Position) {
	var h uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= zobristPiece[c][pt][sq]
			}
		}
	}
	if p.SideToMove == Black {
		h ^= zobristSideToMove
	}
	for _, right := range []CastlingRights{WhiteKingSideCastle, WhiteQueenSideCastle, BlackKingSideCastle, BlackQueenSideCastle} {
		if p.CastlingRights&right != 0 {
			h ^= zobristCastleRight[castleRightIndex(right)]
		}
	}
	if p.EnPassant != NoSquare {
		h ^= zobristEnPassant[p.EnPassant.File()]
	}
	z.hash = h
}

func (z *ZobristHasher) ConsumePiece(c Color, pt PieceType, sq Square) {
	z.hash ^= zobristPiece[c][pt][sq]
}

func (z *ZobristHasher) ConsumeCastleRight(right CastlingRights) {
	z.hash ^= zobristCastleRight[castleRightIndex(right)]
}

func (z *ZobristHasher) ConsumeColor() {
	z.hash ^= zobristSideToMove
}

func (z *ZobristHasher) ConsumeEnPassant(file int) {
	z.hash ^= zobristEnPassant[file]
}

func (z *ZobristHasher) Get() uint64 {
	return z.hash
}
