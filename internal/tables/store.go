package tables

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mappedFile pairs an open file descriptor with its memory mapping so both
// can be closed together.
type mappedFile struct {
	f  *os.File
	mm mmap.MMap
}

func (m *mappedFile) Close() error {
	if err := m.mm.Unmap(); err != nil {
		m.f.Close()
		return fmt.Errorf("tables: unmap %s: %w", m.f.Name(), err)
	}
	return m.f.Close()
}

func createAndMap(path string, size int64) (*mappedFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("tables: create %s: %w", path, err)
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("tables: truncate %s: %w", path, err)
	}
	mm, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("tables: mmap %s: %w", path, err)
	}
	return &mappedFile{f: f, mm: mm}, nil
}

func openReadOnly(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tables: open %s: %w", path, err)
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("tables: mmap %s: %w", path, err)
	}
	return &mappedFile{f: f, mm: mm}, nil
}

// Uint16Table is a [moves][states]uint16 coordinate move table backed by a
// memory-mapped file.
type Uint16Table struct {
	mf     *mappedFile
	states int
}

func (t *Uint16Table) Get(move, state int) uint16 {
	off := (move*t.states + state) * 2
	return binary.LittleEndian.Uint16(t.mf.mm[off : off+2])
}

func (t *Uint16Table) Set(move, state int, v uint16) {
	off := (move*t.states + state) * 2
	binary.LittleEndian.PutUint16(t.mf.mm[off:off+2], v)
}

func (t *Uint16Table) Close() error { return t.mf.Close() }

// Uint32Table is a [moves][states]uint32 coordinate move table backed by a
// memory-mapped file.
type Uint32Table struct {
	mf     *mappedFile
	states int
}

func (t *Uint32Table) Get(move, state int) uint32 {
	off := (move*t.states + state) * 4
	return binary.LittleEndian.Uint32(t.mf.mm[off : off+4])
}

func (t *Uint32Table) Set(move, state int, v uint32) {
	off := (move*t.states + state) * 4
	binary.LittleEndian.PutUint32(t.mf.mm[off:off+4], v)
}

func (t *Uint32Table) Close() error { return t.mf.Close() }

// ByteTable is a flat []byte table backed by a memory-mapped file, used for
// the raw 92x15 piece/orientation move tables and for pruning tables.
type ByteTable struct {
	mf *mappedFile
}

func (t *ByteTable) Get(i int64) byte     { return t.mf.mm[i] }
func (t *ByteTable) Set(i int64, v byte)  { t.mf.mm[i] = v }
func (t *ByteTable) Len() int             { return len(t.mf.mm) }
func (t *ByteTable) Close() error         { return t.mf.Close() }
func (t *ByteTable) Bytes() []byte        { return t.mf.mm }
