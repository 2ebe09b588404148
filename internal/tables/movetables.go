package tables

import (
	"context"
	"fmt"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// GenerateMoveTables writes all six move tables to disk: the two raw
// 92x15 piece/orientation tables (a direct dump of puzzle's in-memory
// tables, computed once from simulating each canonical move against the
// solved cube) and the four coordinate-space tables (C3, IO, I, O), each
// generated by constructing a representative cubie state per coordinate
// value, applying every move, and reading back the resulting coordinate.
func GenerateMoveTables(ctx context.Context, layout Layout, workers int) error {
	if err := writePermAndA4ListTables(layout); err != nil {
		return err
	}
	if err := generateCoordTable(ctx, layout.path(puzzle.C3MoveTableFile), puzzle.NPhase2Moves, puzzle.NC3CoordStates, c3EntrySize, workers,
		func(state int) puzzle.CubieState { return puzzle.FromC3Coord(state) },
		func(c puzzle.CubieState) int { return c.GetC3Coord() },
		"C3 move table"); err != nil {
		return err
	}
	if err := generateCoordTable(ctx, layout.path(puzzle.IOMoveTableFile), puzzle.NPhase2Moves, puzzle.NIOCoordStates, ioEntrySize, workers,
		func(state int) puzzle.CubieState { return puzzle.FromPermutationCoords(state, 0, 0) },
		func(c puzzle.CubieState) int { return c.GetIOCoord() },
		"IO move table"); err != nil {
		return err
	}
	if err := generateCoordTable(ctx, layout.path(puzzle.IMoveTableFile), puzzle.NPhase3Moves, puzzle.NICoordStates, iEntrySize, workers,
		func(state int) puzzle.CubieState { return puzzle.FromPermutationCoords(0, state, 0) },
		func(c puzzle.CubieState) int { return c.GetICoord() },
		"I move table"); err != nil {
		return err
	}
	if err := generateCoordTable(ctx, layout.path(puzzle.OMoveTableFile), puzzle.NPhase3Moves, puzzle.NOCoordStates, oEntrySize, workers,
		func(state int) puzzle.CubieState { return puzzle.FromPermutationCoords(0, 0, state) },
		func(c puzzle.CubieState) int { return c.GetOCoord() },
		"O move table"); err != nil {
		return err
	}
	return nil
}

func writePermAndA4ListTables(layout Layout) error {
	permFile, err := createAndMap(layout.path(puzzle.PermListMoveTableFile), permListSize())
	if err != nil {
		return err
	}
	defer permFile.Close()
	a4File, err := createAndMap(layout.path(puzzle.A4ListMoveTableFile), a4ListSize())
	if err != nil {
		return err
	}
	defer a4File.Close()

	for m := 0; m < puzzle.NPhase1Moves; m++ {
		for i := 0; i < 15; i++ {
			permFile.mm[m*15+i] = puzzle.PermListMoveTable[m][i]
			a4File.mm[m*15+i] = puzzle.A4ListMoveTable[m][i]
		}
	}
	return nil
}

// generateCoordTable fills a [nMoves][states] table of the given entry
// width (2 or 4 bytes) using fromState to build a representative cubie
// for a coordinate value and toCoord to read the coordinate back out
// after a move is applied. nMoves is the move-set size of the phase that
// consumes this table (44 for C3/IO, 12 for I/O), not the full 92-move
// phase-1 set: phase 2 and phase 3 search never index past their own
// move set, so generating rows beyond it would only waste disk and
// build time. Columns (one per move) are generated concurrently.
func generateCoordTable(
	ctx context.Context,
	path string,
	nMoves int,
	states int,
	entrySize int,
	workers int,
	fromState func(int) puzzle.CubieState,
	toCoord func(puzzle.CubieState) int,
	label string,
) error {
	size := int64(nMoves) * int64(states) * int64(entrySize)
	mf, err := createAndMap(path, size)
	if err != nil {
		return err
	}
	defer mf.Close()

	bar := progressbar.Default(int64(nMoves), label)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	write := func(move, state, value int) {
		off := int64(move*states+state) * int64(entrySize)
		switch entrySize {
		case 2:
			mf.mm[off] = byte(value)
			mf.mm[off+1] = byte(value >> 8)
		case 4:
			mf.mm[off] = byte(value)
			mf.mm[off+1] = byte(value >> 8)
			mf.mm[off+2] = byte(value >> 16)
			mf.mm[off+3] = byte(value >> 24)
		}
	}

	for move := 0; move < nMoves; move++ {
		move := move
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			for state := 0; state < states; state++ {
				rep := fromState(state)
				after := rep.Apply(move)
				write(move, state, toCoord(after))
			}
			_ = bar.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("tables: generating %s: %w", label, err)
	}
	return nil
}

// LoadUint32Table memory-maps an existing C3 coordinate move table.
func LoadUint32Table(layout Layout, name string, states int) (*Uint32Table, error) {
	mf, err := openReadOnly(layout.path(name))
	if err != nil {
		return nil, err
	}
	return &Uint32Table{mf: mf, states: states}, nil
}

// LoadUint16Table memory-maps an existing IO/I/O coordinate move table.
func LoadUint16Table(layout Layout, name string, states int) (*Uint16Table, error) {
	mf, err := openReadOnly(layout.path(name))
	if err != nil {
		return nil, err
	}
	return &Uint16Table{mf: mf, states: states}, nil
}

// LoadByteTable memory-maps an existing flat byte table (piece/orientation
// move tables or a pruning table).
func LoadByteTable(layout Layout, name string) (*ByteTable, error) {
	mf, err := openReadOnly(layout.path(name))
	if err != nil {
		return nil, err
	}
	return &ByteTable{mf: mf}, nil
}
