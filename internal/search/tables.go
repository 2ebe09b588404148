package search

import (
	"fmt"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
	"github.com/ehrlich-b/hyper4d/internal/tables"
)

// coordTable16/coordTable32/distanceTable are satisfied by
// *tables.Uint16Table/*tables.Uint32Table/*tables.ByteTable without any
// change on their part (Go interfaces are structural); defining them here
// lets tests substitute tiny in-memory fakes for phase 2/3's multi-GB
// real tables instead of generating them.
type coordTable16 interface {
	Get(move, state int) uint16
	Close() error
}

type coordTable32 interface {
	Get(move, state int) uint32
	Close() error
}

type distanceTable interface {
	Get(i int64) byte
	Close() error
}

// Tables bundles the memory-mapped move and pruning tables that every
// phase generator reads from. It is loaded once at process startup and
// shared read-only across any number of concurrent solves.
type Tables struct {
	C3 coordTable32
	IO coordTable16
	I  coordTable16
	O  coordTable16

	Phase1Prune distanceTable
	Phase2Prune distanceTable
	Phase3Prune distanceTable
}

// LoadTables memory-maps every table generated by internal/tables out of
// layout.Dir. Callers must Close the result when done.
func LoadTables(layout tables.Layout) (*Tables, error) {
	t := &Tables{}
	var err error

	if t.C3, err = tables.LoadUint32Table(layout, puzzle.C3MoveTableFile, puzzle.NC3CoordStates); err != nil {
		return nil, fmt.Errorf("search: loading tables: %w", err)
	}
	if t.IO, err = tables.LoadUint16Table(layout, puzzle.IOMoveTableFile, puzzle.NIOCoordStates); err != nil {
		t.Close()
		return nil, fmt.Errorf("search: loading tables: %w", err)
	}
	if t.I, err = tables.LoadUint16Table(layout, puzzle.IMoveTableFile, puzzle.NICoordStates); err != nil {
		t.Close()
		return nil, fmt.Errorf("search: loading tables: %w", err)
	}
	if t.O, err = tables.LoadUint16Table(layout, puzzle.OMoveTableFile, puzzle.NOCoordStates); err != nil {
		t.Close()
		return nil, fmt.Errorf("search: loading tables: %w", err)
	}
	if t.Phase1Prune, err = tables.LoadByteTable(layout, puzzle.Phase1PruningTableFile); err != nil {
		t.Close()
		return nil, fmt.Errorf("search: loading tables: %w", err)
	}
	if t.Phase2Prune, err = tables.LoadByteTable(layout, puzzle.Phase2PruningTableFile); err != nil {
		t.Close()
		return nil, fmt.Errorf("search: loading tables: %w", err)
	}
	if t.Phase3Prune, err = tables.LoadByteTable(layout, puzzle.Phase3PruningTableFile); err != nil {
		t.Close()
		return nil, fmt.Errorf("search: loading tables: %w", err)
	}
	return t, nil
}

// Close unmaps every table, returning the first error encountered.
func (t *Tables) Close() error {
	var first error
	note := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	if t.C3 != nil {
		note(t.C3.Close())
	}
	if t.IO != nil {
		note(t.IO.Close())
	}
	if t.I != nil {
		note(t.I.Close())
	}
	if t.O != nil {
		note(t.O.Close())
	}
	if t.Phase1Prune != nil {
		note(t.Phase1Prune.Close())
	}
	if t.Phase2Prune != nil {
		note(t.Phase2Prune.Close())
	}
	if t.Phase3Prune != nil {
		note(t.Phase3Prune.Close())
	}
	return first
}

// phase2Index matches CubieState.GetPhase2Node: IO * N_C3 + C3.
func phase2Index(c3, io int) int64 {
	return int64(io)*puzzle.NC3CoordStates + int64(c3)
}

// phase3Index matches CubieState.GetPhase3Node: O * N_HALF_I + I_half.
func phase3Index(iHalf, o int) int64 {
	return int64(o)*puzzle.NHalfICoordStates + int64(iHalf)
}
