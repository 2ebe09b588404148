// Package tables generates and serves the on-disk move and pruning tables
// that back phase search: six move tables (two raw 92x15 piece/orientation
// tables plus four coordinate-space tables) and three pruning tables, one
// per phase. Every table is generated to a file and then memory-mapped, so
// a multi-gigabyte pruning table is never copied wholesale into process
// memory.
package tables

import (
	"path/filepath"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

// Layout names the directory tables are generated into and read from.
type Layout struct {
	Dir string
}

// NewLayout builds a Layout rooted at dir.
func NewLayout(dir string) Layout {
	return Layout{Dir: dir}
}

func (l Layout) path(name string) string {
	return filepath.Join(l.Dir, name)
}

// Sizes of the fixed-width entries used by each table, kept in one place so
// the size functions below and table generation share the same layout.
const (
	permListEntrySize = 1 // uint8 piece index, 15 per move
	a4ListEntrySize   = 1 // uint8 orientation index, 15 per move
	c3EntrySize       = 4 // uint32 coordinate, up to NC3CoordStates
	ioEntrySize       = 2 // uint16 coordinate, up to NIOCoordStates
	iEntrySize        = 2 // uint16 coordinate, up to NICoordStates
	oEntrySize        = 2 // uint16 coordinate, up to NOCoordStates
	pruneEntrySize    = 1 // uint8 distance, capped at its phase's prune depth + 1
)

func permListSize() int64 { return int64(puzzle.NPhase1Moves) * 15 * permListEntrySize }
func a4ListSize() int64   { return int64(puzzle.NPhase1Moves) * 15 * a4ListEntrySize }
func c3TableSize() int64  { return int64(puzzle.NPhase2Moves) * puzzle.NC3CoordStates * c3EntrySize }
func ioTableSize() int64  { return int64(puzzle.NPhase2Moves) * puzzle.NIOCoordStates * ioEntrySize }
func iTableSize() int64   { return int64(puzzle.NPhase3Moves) * puzzle.NICoordStates * iEntrySize }
func oTableSize() int64   { return int64(puzzle.NPhase3Moves) * puzzle.NOCoordStates * oEntrySize }

func phase1PruneSize() int64 { return puzzle.NPhase1States }
func phase2PruneSize() int64 { return puzzle.NPhase2States }
func phase3PruneSize() int64 { return puzzle.NPhase3States }
