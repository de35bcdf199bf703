package board

import "testing"

// TestMakeUnmakeHashRoundTrip checks that playing a move and unmaking it
// restores the hash exactly, not just the board contents.
func TestMakeUnmakeHashRoundTrip(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	before := pos.HashValue()
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		pos.Make(m)
		pos.Unmake(m)
		if got := pos.HashValue(); got != before {
			t.Errorf("move %s: hash after make/unmake = %x, want %x", m.String(), got, before)
		}
	}
}

// TestHashFromScratchMatchesIncremental checks that re-deriving the hash
// from board contents (ZobristHasher.Init) agrees with the hash
// maintained incrementally through a sequence of Make calls.
func TestHashFromScratchMatchesIncremental(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	for _, ms := range []string{"e1g1", "e8g8", "d5d6", "c7d6"} {
		m, err := ParseMove(ms, pos)
		if err != nil {
			t.Fatalf("failed to parse move %q: %v", ms, err)
		}
		pos.Make(m)

		incremental := pos.HashValue()
		var fresh ZobristHasher
		fresh.Init(pos)
		if fresh.Get() != incremental {
			t.Errorf("after %s: from-scratch hash = %x, incremental = %x", ms, fresh.Get(), incremental)
		}
	}
}
