package board

// Direction names one of the eight ray directions a sliding piece can move
// along. Each ray is oriented: increasing rays walk toward higher square
// indices (first blocker found via LSB of ray∩occupied), decreasing rays
// walk toward lower indices (first blocker via MSB).
type Direction uint8

const (
	DirNorthEast Direction = iota
	DirNorthWest
	DirSouthEast
	DirSouthWest
	DirNorth
	DirSouth
	DirEast
	DirWest
	numDirections
)

var directionIncreasing = [numDirections]bool{
	DirNorthEast: true,
	DirNorthWest: true,
	DirSouthEast: false,
	DirSouthWest: false,
	DirNorth:     true,
	DirSouth:     false,
	DirEast:      true,
	DirWest:      false,
}

// rayTable[dir][sq] holds every square reachable from sq along dir in the
// absence of blockers, excluding sq itself.
var rayTable [numDirections][64]Bitboard

func init() {
	initRayTable()
}

func initRayTable() {
	steps := [numDirections]struct{ df, dr int }{
		DirNorthEast: {1, 1},
		DirNorthWest: {-1, 1},
		DirSouthEast: {1, -1},
		DirSouthWest: {-1, -1},
		DirNorth:     {0, 1},
		DirSouth:     {0, -1},
		DirEast:      {1, 0},
		DirWest:      {-1, 0},
	}

	for dir := Direction(0); dir < numDirections; dir++ {
		df, dr := steps[dir].df, steps[dir].dr
		for sq := A1; sq <= H8; sq++ {
			var ray Bitboard
			f, r := sq.File()+df, sq.Rank()+dr
			for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
				ray |= SquareBB(NewSquare(f, r))
				f += df
				r += dr
			}
			rayTable[dir][sq] = ray
		}
	}
}

// slidingAttacks returns the attack set along a single ray direction given
// the current occupancy: everything up to and including the first blocker.
func slidingAttacks(sq Square, occupied Bitboard, dir Direction) Bitboard {
	ray := rayTable[dir][sq]
	blockers := ray & occupied
	if blockers == 0 {
		return ray
	}
	var blocker Square
	if directionIncreasing[dir] {
		blocker = blockers.LSB()
	} else {
		blocker = blockers.MSB()
	}
	return ray &^ rayTable[dir][blocker]
}

func getBishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, DirNorthEast) |
		slidingAttacks(sq, occupied, DirNorthWest) |
		slidingAttacks(sq, occupied, DirSouthEast) |
		slidingAttacks(sq, occupied, DirSouthWest)
}

func getRookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, DirNorth) |
		slidingAttacks(sq, occupied, DirSouth) |
		slidingAttacks(sq, occupied, DirEast) |
		slidingAttacks(sq, occupied, DirWest)
}

// diagonalDirections and orthogonalDirections list the four rays of each
// kind. Nothing in the package reads them at present: the oracle and move
// generation go through getBishopAttacks/getRookAttacks above.
var diagonalDirections = [4]Direction{DirNorthEast, DirNorthWest, DirSouthEast, DirSouthWest}
var orthogonalDirections = [4]Direction{DirNorth, DirSouth, DirEast, DirWest}
