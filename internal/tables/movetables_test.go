package tables

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

// TestGenerateCoordTableRoundTrip checks generateCoordTable's written
// entries against a small slice of the real C3 coordinate space: every
// (move, state) cell must equal directly recomputing
// FromC3Coord(state).Apply(move).GetC3Coord(), testable today against a
// handful of moves and states rather than the full 4,782,969-entry table.
func TestGenerateCoordTableRoundTrip(t *testing.T) {
	dir := t.TempDir()
	const name = "c3_subset.move"
	const nMoves = 3
	const states = 20

	err := generateCoordTable(context.Background(), filepath.Join(dir, name), nMoves, states, c3EntrySize, 1,
		func(state int) puzzle.CubieState { return puzzle.FromC3Coord(state) },
		func(c puzzle.CubieState) int { return c.GetC3Coord() },
		"c3 subset")
	if err != nil {
		t.Fatalf("generateCoordTable: %v", err)
	}

	tbl, err := LoadUint32Table(NewLayout(dir), name, states)
	if err != nil {
		t.Fatalf("LoadUint32Table: %v", err)
	}
	defer tbl.Close()

	for move := 0; move < nMoves; move++ {
		for state := 0; state < states; state++ {
			want := puzzle.FromC3Coord(state).Apply(move).GetC3Coord()
			if got := int(tbl.Get(move, state)); got != want {
				t.Fatalf("move %d state %d: got %d want %d", move, state, got, want)
			}
		}
	}
}

// TestGenerateCoordTableSizeMatchesMoveCount guards against regenerating
// a coordinate table with the full 92-move phase-1 set baked in: the
// on-disk size must track the nMoves argument passed in, since phase 2
// and phase 3 search only ever index the table with their own 44- and
// 12-move sets.
func TestGenerateCoordTableSizeMatchesMoveCount(t *testing.T) {
	dir := t.TempDir()
	const name = "sized.move"
	const nMoves = 4
	const states = 7

	err := generateCoordTable(context.Background(), filepath.Join(dir, name), nMoves, states, ioEntrySize, 1,
		func(state int) puzzle.CubieState { return puzzle.Solved() },
		func(c puzzle.CubieState) int { return 0 },
		"sized")
	if err != nil {
		t.Fatalf("generateCoordTable: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	want := int64(nMoves) * int64(states) * int64(ioEntrySize)
	if info.Size() != want {
		t.Fatalf("file size = %d, want %d (nMoves * states * entrySize)", info.Size(), want)
	}
}

// TestTableSizesUseOwnPhaseMoveCounts checks that the C3/IO table sizers
// use phase 2's 44-move set and the I/O table sizers use phase 3's
// 12-move set, not the full 92-move phase-1 set (which would roughly
// double the C3/IO tables and balloon the I/O tables ~7.7x for rows no
// search path ever reads).
func TestTableSizesUseOwnPhaseMoveCounts(t *testing.T) {
	if got, want := c3TableSize(), int64(puzzle.NPhase2Moves)*puzzle.NC3CoordStates*c3EntrySize; got != want {
		t.Fatalf("c3TableSize() = %d, want %d", got, want)
	}
	if got, want := ioTableSize(), int64(puzzle.NPhase2Moves)*puzzle.NIOCoordStates*ioEntrySize; got != want {
		t.Fatalf("ioTableSize() = %d, want %d", got, want)
	}
	if got, want := iTableSize(), int64(puzzle.NPhase3Moves)*puzzle.NICoordStates*iEntrySize; got != want {
		t.Fatalf("iTableSize() = %d, want %d", got, want)
	}
	if got, want := oTableSize(), int64(puzzle.NPhase3Moves)*puzzle.NOCoordStates*oEntrySize; got != want {
		t.Fatalf("oTableSize() = %d, want %d", got, want)
	}
}
