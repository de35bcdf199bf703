package board

import "testing"

// TestFENRoundTrip checks that parsing a FEN and re-emitting it with ToFEN
// reproduces the same string, for several structurally distinct positions
// (castling rights, an en passant target, an empty-board-relative mix of
// piece counts).
func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		got := pos.ToFEN()
		if got != fen {
			t.Errorf("round trip mismatch:\n in:  %s\n out: %s", fen, got)
		}

		// Parsing the re-emitted FEN must itself succeed and reproduce the
		// same string again, not merely an equivalent board.
		pos2, err := ParseFEN(got)
		if err != nil {
			t.Fatalf("ParseFEN(%q) (re-parse): %v", got, err)
		}
		if pos2.ToFEN() != got {
			t.Errorf("second round trip mismatch:\n in:  %s\n out: %s", got, pos2.ToFEN())
		}
	}
}
