package board

// MaxMoves bounds the total number of moves the arena can hold across all
// open plies at once; deep search trees stay well under this.
const MaxMoves = 2048

// MaxPlies bounds the nesting depth of open ply frames.
const MaxPlies = 128

// MoveList is a ply-stacked arena of moves: each recursive search level owns
// one frame, pushed with NewPly and discarded with DropPly. Insert appends
// to the top frame. This avoids a heap allocation per node of search.
type MoveList struct {
	moves       [MaxMoves]Move
	plyFirst    [MaxPlies]int
	currentPly  int
	totalCount  int
}

// NewMoveList returns an empty arena with no open ply.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// NewPly pushes a fresh frame on top of the arena.
func (ml *MoveList) NewPly() {
	ml.currentPly++
	ml.plyFirst[ml.currentPly] = ml.totalCount
}

// DropPly discards the top frame and everything inserted into it.
func (ml *MoveList) DropPly() {
	ml.totalCount = ml.plyFirst[ml.currentPly]
	ml.currentPly--
}

// Insert appends a move to the current (topmost) frame. Panics if no ply is
// open — an internal-invariant violation per the error-handling design.
func (ml *MoveList) Insert(m Move) {
	if ml.currentPly == 0 {
		panic("board: MoveList.Insert with no open ply")
	}
	ml.moves[ml.totalCount] = m
	ml.totalCount++
}

// PlySize returns the number of moves in the current frame.
func (ml *MoveList) PlySize() int {
	return ml.totalCount - ml.plyFirst[ml.currentPly]
}

// CurrentPly returns the moves in the current frame as a slice view.
func (ml *MoveList) CurrentPly() []Move {
	return ml.moves[ml.plyFirst[ml.currentPly]:ml.totalCount]
}

// Get returns the i-th move of the current frame.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[ml.plyFirst[ml.currentPly]+i]
}

// Len is an alias for PlySize, for callers that treat the current frame as
// a simple slice of moves (perft, tests).
func (ml *MoveList) Len() int {
	return ml.PlySize()
}

// OrderPly reorders the current frame in place: the pv move (if present in
// this frame) first, then every non-quiet move, then quiet moves.
func (ml *MoveList) OrderPly(pv Move) {
	frame := ml.CurrentPly()
	n := len(frame)
	pos := 0

	if pv != NoMove {
		for i := pos; i < n; i++ {
			if frame[i] == pv {
				frame[pos], frame[i] = frame[i], frame[pos]
				pos++
				break
			}
		}
	}

	for i := pos; i < n; i++ {
		if !frame[i].IsQuiet() {
			frame[pos], frame[i] = frame[i], frame[pos]
			pos++
		}
	}
}
