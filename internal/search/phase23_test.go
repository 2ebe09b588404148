package search

import (
	"context"
	"testing"
	"time"
)

func TestPhase2SolutionsAlreadySolved(t *testing.T) {
	tbl := &Tables{
		C3:          fakeCoord32{},
		IO:          fakeCoord16{},
		Phase2Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	gen := tbl.Phase2Solutions(ctx, 0, 0, -1)
	seq, ok := gen.Next()
	if !ok || len(seq) != 0 {
		t.Fatalf("want empty solution, got %v ok=%v", seq, ok)
	}
}

func TestPhase3SolutionsAlreadySolved(t *testing.T) {
	tbl := &Tables{
		I:           fakeCoord16{},
		O:           fakeCoord16{},
		Phase3Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	gen := tbl.Phase3Solutions(ctx, 0, 0, -1)
	seq, ok := gen.Next()
	if !ok || len(seq) != 0 {
		t.Fatalf("want empty solution, got %v ok=%v", seq, ok)
	}
}

// TestPhase2SolutionsRespectsAxisBlock checks the same-axis canonical
// ordering rule: the one move that reaches solved directly
// shares its axis with lastAxis, so it can't be taken as the very first
// move. A solution is still found, but only after routing through a move
// of another axis first, so it comes out one move longer than the raw
// pruning bound would suggest.
func TestPhase2SolutionsRespectsAxisBlock(t *testing.T) {
	const solvingMove = 12 // TwistAxes[12] == 0
	tbl := &Tables{
		C3: fakeCoord32{trans: map[[2]int]uint32{{solvingMove, 1}: 0}},
		IO: fakeCoord16{},
		Phase2Prune: fakeDistance{
			d:   map[int64]byte{phase2Index(0, 0): 0, phase2Index(1, 0): 1},
			def: 99,
		},
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	gen := tbl.Phase2Solutions(ctx, 1, 0, 0) // lastAxis 0 blocks the solving move's own axis
	seq, ok := gen.Next()
	if !ok {
		t.Fatal("expected a solution routed through another axis before the deadline")
	}
	if len(seq) < 2 {
		t.Fatalf("solving move was blocked at depth 1 by the axis rule; want length >= 2, got %v", seq)
	}
}

func TestPhase3CanSolve(t *testing.T) {
	// Move 0 (axis 0) takes iHalf 5 to 7, a node one move closer to solved
	// than 5 itself; every other move leaves iHalf unchanged (default
	// identity), so only an axis-0 lastAxis can expose the shortcut.
	tbl := &Tables{
		I: fakeCoord16{trans: map[[2]int]uint16{{0, 5}: 7}},
		O: fakeCoord16{},
		Phase3Prune: fakeDistance{
			d:   map[int64]byte{phase3Index(0, 0): 0, phase3Index(7, 0): 1, phase3Index(5, 0): 2},
			def: 99,
		},
	}

	if !tbl.Phase3CanSolve(0, 0, 0, -1) {
		t.Fatal("already-solved node should be solvable within budget 0")
	}
	if tbl.Phase3CanSolve(5, 0, 0, -1) {
		t.Fatal("a node at distance 2 should not be solvable within budget 0")
	}
	// distance 2 == budget(1)+1: the one-move correction should kick in
	// only when an optimal first move (here, move 0) shares lastAxis.
	axis0 := 0 // TwistAxes[0] == 0
	if !tbl.Phase3CanSolve(5, 0, 1, axis0) {
		t.Fatal("a cancelling first move on lastAxis should reduce effective distance by one")
	}
	if tbl.Phase3CanSolve(5, 0, 1, 3) {
		t.Fatal("the correction should not apply when lastAxis doesn't match any optimal first move")
	}
}
