package search

import (
	"context"
	"testing"
	"time"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

func TestMergeEmptySides(t *testing.T) {
	a := []int{12, 0, 5}
	if got := merge(nil, a); len(got) != len(a) {
		t.Fatalf("merge(nil, a) = %v, want %v", got, a)
	}
	if got := merge(a, nil); len(got) != len(a) {
		t.Fatalf("merge(a, nil) = %v, want %v", got, a)
	}
}

// TestMergePreservesNetEffect checks merge's actual contract regardless of
// which branch (Concatenate/Annihilate/Replace) the seam's composition
// falls into: applying the merged sequence must land on the same state as
// applying both sequences in full, for any real canonical moves.
func TestMergePreservesNetEffect(t *testing.T) {
	start := puzzle.Solved()
	cases := [][2][]int{
		{{12, 0}, {13, 5}},
		{{2, 18}, {2, 6}},
		{{5, 6, 7}, {7, 6, 5}},
		{{0}, {0}},
	}
	for _, c := range cases {
		a, b := c[0], c[1]
		got := applySeq(start, merge(a, b))
		want := applySeq(applySeq(start, a), b)
		if !got.Equal(want) {
			t.Fatalf("merge(%v, %v) changed net effect: got %+v want %+v", a, b, got, want)
		}
	}
}

// TestSolveAlreadySolvedYieldsEmptySolution is the S1 scenario at the full
// orchestrator level: a solved input should produce the empty move sequence
// as its first (and only useful) result, without ever touching the real
// multi-GB tables the production CLI would load.
func TestSolveAlreadySolvedYieldsEmptySolution(t *testing.T) {
	tbl := &Tables{
		C3: fakeCoord32{}, IO: fakeCoord16{}, I: fakeCoord16{}, O: fakeCoord16{},
		Phase1Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
		Phase2Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
		Phase3Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := Solve(ctx, tbl, puzzle.Solved(), -1, Options{})
	sol, ok := <-results
	if !ok {
		t.Fatal("expected at least one solution for a solved input")
	}
	if len(sol.Moves) != 0 {
		t.Fatalf("want empty solution for solved input, got %v", sol.Moves)
	}

	// Cancelling must make the producer goroutine exit promptly; draining
	// the channel must not hang.
	cancel()
	for range results {
	}
}

// TestSolveReportsLowerBoundAdvances exercises the OnLowerBoundAdvance hook
// on the same trivial, solved-input case: since the empty sequence is found
// at phase 1's very first bound (0), the callback's first call should
// report 0.
func TestSolveReportsLowerBoundAdvances(t *testing.T) {
	tbl := &Tables{
		C3: fakeCoord32{}, IO: fakeCoord16{}, I: fakeCoord16{}, O: fakeCoord16{},
		Phase1Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
		Phase2Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
		Phase3Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var bounds []int
	results := Solve(ctx, tbl, puzzle.Solved(), -1, Options{
		OnLowerBoundAdvance: func(b int) { bounds = append(bounds, b) },
	})
	if _, ok := <-results; !ok {
		t.Fatal("expected at least one solution")
	}
	cancel()
	for range results {
	}

	if len(bounds) == 0 || bounds[0] != 0 {
		t.Fatalf("want first lower-bound advance to report 0, got %v", bounds)
	}
}

// TestSolveUntilReturnsQuicklyForSolvedInput checks the time-bounded
// wrapper on the same trivial case: the empty solution is optimal and
// found immediately, so SolveUntil should return well before its patience
// window would otherwise elapse (it returns as soon as the search channel
// closes, proving optimality).
func TestSolveUntilReturnsQuicklyForSolvedInput(t *testing.T) {
	tbl := &Tables{
		C3: fakeCoord32{}, IO: fakeCoord16{}, I: fakeCoord16{}, O: fakeCoord16{},
		Phase1Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
		Phase2Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
		Phase3Prune: fakeDistance{d: map[int64]byte{0: 0}, def: 99},
	}

	start := time.Now()
	sol, ok := SolveUntil(context.Background(), tbl, puzzle.Solved(), 200*time.Millisecond)
	elapsed := time.Since(start)

	if !ok {
		t.Fatal("expected a solution")
	}
	if len(sol.Moves) != 0 {
		t.Fatalf("want empty solution for solved input, got %v", sol.Moves)
	}
	if elapsed > 150*time.Millisecond {
		t.Fatalf("SolveUntil took %v; want it to return promptly once optimality is proven", elapsed)
	}
}
