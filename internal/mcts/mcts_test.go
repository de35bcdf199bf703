package mcts

import (
	"math"
	"testing"
	"time"

	"github.com/hailam/chesscore/internal/board"
)

// TestRolloutConvergesToHalf mirrors the Rust original's test_rollout:
// over many rollouts from the starting position, white and black win
// roughly equally often, so the mean should sit close to 0.5.
func TestRolloutConvergesToHalf(t *testing.T) {
	e := NewEngine(DefaultExplorationWeight)
	pos := board.NewPosition()

	const trials = 1000
	var total float64
	for i := 0; i < trials; i++ {
		total += e.rollout(pos)
	}
	mean := total / float64(trials)

	if math.Abs(mean-0.5) > 0.05 {
		t.Errorf("mean rollout outcome = %f, want within 0.05 of 0.5", mean)
	}
}

func TestSelectReturnsLegalMove(t *testing.T) {
	pos := board.NewPosition()
	e := NewEngine(DefaultExplorationWeight)

	move := e.Select(pos, time.Now().Add(200*time.Millisecond))
	if move == board.NoMove {
		t.Fatal("Select returned NoMove for starting position")
	}

	legal := pos.GenerateLegalMoves()
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.Get(i) == move {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Select returned %s, not among legal moves", move.String())
	}
}

func TestClearResetsGraph(t *testing.T) {
	pos := board.NewPosition()
	e := NewEngine(DefaultExplorationWeight)

	e.Select(pos, time.Now().Add(50*time.Millisecond))
	if len(e.nodes) == 0 {
		t.Fatal("expected Select to populate the node graph")
	}

	e.Clear()
	if len(e.nodes) != 0 {
		t.Errorf("Clear left %d nodes behind, want 0", len(e.nodes))
	}
}
