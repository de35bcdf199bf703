package engine

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

// TestEvaluateMaterialSign checks the two headline material cases the
// grounding notes call out by name: a pawn up scores +100 and a knight
// down scores -300, white-relative, exactly matching board.PieceValue.
// Position.Material is asserted directly rather than through Evaluate so
// the mobility and pawn-structure terms (which any extra piece also
// perturbs) can't mask a wrong material coefficient.
func TestEvaluateMaterialSign(t *testing.T) {
	up, err := board.ParseFEN("4k3/8/8/8/8/P7/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := up.Material(); got != 100 {
		t.Errorf("pawn up: Material() = %d, want 100", got)
	}

	knightDown, err := board.ParseFEN("4k3/8/n7/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := knightDown.Material(); got != -300 {
		t.Errorf("knight down: Material() = %d, want -300", got)
	}

	// Evaluate must agree on sign once side to move flips which side the
	// score is relative to.
	downToMove, err := board.ParseFEN("4k3/8/8/8/8/P7/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if Evaluate(downToMove) >= 0 {
		t.Errorf("black to move, white a pawn up: Evaluate() = %d, want negative", Evaluate(downToMove))
	}
}

// TestPawnStructurePenalties checks the exact doubled- and isolated-pawn
// coefficients (-40 each, applied per affected pawn) against
// pawnStructureScore directly, isolating them from the mobility term
// Evaluate would also mix in.
func TestPawnStructurePenalties(t *testing.T) {
	// A single a-pawn: isolated (no b-pawn), not doubled.
	single, err := board.ParseFEN("4k3/8/8/8/8/8/P7/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pawnStructureScore(single); got != isolatedPawnPenalty {
		t.Errorf("single isolated a-pawn: pawnStructureScore = %d, want %d", got, isolatedPawnPenalty)
	}

	// Doubled a-pawns, still isolated: one doubled penalty (count-1 extra
	// pawns on the file) plus one isolated penalty per pawn on the file.
	doubled, err := board.ParseFEN("4k3/8/8/8/P7/8/P7/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want := doubledPawnPenalty + 2*isolatedPawnPenalty
	if got := pawnStructureScore(doubled); got != want {
		t.Errorf("doubled isolated a-pawns: pawnStructureScore = %d, want %d", got, want)
	}

	// A b-pawn next to the a-pawn removes the isolation penalty entirely.
	supported, err := board.ParseFEN("4k3/8/8/8/8/8/PP6/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pawnStructureScore(supported); got != 0 {
		t.Errorf("a+b pawns, mutually supporting: pawnStructureScore = %d, want 0", got)
	}
}
