package search

// Tiny in-memory stand-ins for the real mmap-backed tables (which run to
// hundreds of MB or tens of GB, and so can't be
// generated inside a test). They satisfy the same interfaces the real
// tables.Uint16Table/Uint32Table/ByteTable do, so the phase generators run
// unmodified against a hand-picked handful of facts.

type fakeDistance struct {
	d   map[int64]byte
	def byte
}

func (f fakeDistance) Get(i int64) byte {
	if v, ok := f.d[i]; ok {
		return v
	}
	return f.def
}

func (f fakeDistance) Close() error { return nil }

type fakeCoord16 struct {
	// trans[[2]int{move, state}] overrides the default identity transition.
	trans map[[2]int]uint16
}

func (f fakeCoord16) Get(move, state int) uint16 {
	if v, ok := f.trans[[2]int{move, state}]; ok {
		return v
	}
	return uint16(state)
}

func (f fakeCoord16) Close() error { return nil }

type fakeCoord32 struct {
	trans map[[2]int]uint32
}

func (f fakeCoord32) Get(move, state int) uint32 {
	if v, ok := f.trans[[2]int{move, state}]; ok {
		return v
	}
	return uint32(state)
}

func (f fakeCoord32) Close() error { return nil }
