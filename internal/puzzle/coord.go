package puzzle

import "sync"

var factorial = [9]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320}

// choose returns the binomial coefficient C(n, k), or 0 if the combination
// is impossible (n < k or either argument negative).
func choose(n, k int) int {
	if k < 0 || n < 0 || n < k {
		return 0
	}
	num := 1
	for i := 0; i < k; i++ {
		num *= n - i
	}
	return num / factorial[k]
}

// --- IO coordinate: which 7 of the 15 non-reference slots are O-type. ---

// EncodeIOCoord ranks the set of slot indices (0..14) marked true in mask
// (exactly 7 of them) via the combinatorial number system, reproducing the
// reference's get_IO_coord formula.
func EncodeIOCoord(mask [15]bool) int {
	var indices [7]int
	n := 0
	for i := 0; i < 15; i++ {
		if mask[i] {
			indices[n] = i
			n++
		}
	}
	coord := NIOCoordStates - 1
	for j := 0; j < 7; j++ {
		coord -= choose(indices[j], j+1)
	}
	return coord
}

var (
	ioDecodeOnce  sync.Once
	ioDecodeTable [NIOCoordStates][15]bool
)

func ioDecodeInit() {
	var combo [7]int
	var fill func(start, k int)
	fill = func(start, k int) {
		if k == 7 {
			var mask [15]bool
			for _, idx := range combo {
				mask[idx] = true
			}
			ioDecodeTable[EncodeIOCoord(mask)] = mask
			return
		}
		for i := start; i < 15; i++ {
			combo[k] = i
			fill(i+1, k+1)
		}
	}
	fill(0, 0)
}

// DecodeIOCoord returns the 15-element O-type mask for a given IO coordinate.
func DecodeIOCoord(coord int) [15]bool {
	ioDecodeOnce.Do(ioDecodeInit)
	return ioDecodeTable[coord]
}

// --- I coordinate: permutation of the 8 I-type pieces. ---

// EncodeICoord ranks an 8-element permutation (values 0..7) via the
// reference's get_I_coord scheme: a mixed-radix inversion count over
// positions 2..7 weighted by i!/2, with a parity bit selecting which half
// of the 8! space.
func EncodeICoord(perm [8]uint8) int {
	coord := 0
	for i := 2; i < 8; i++ {
		count := 0
		for j := 0; j < i; j++ {
			if perm[j] > perm[i] {
				count++
			}
		}
		coord += count * (factorial[i] / 2)
	}
	if !permutationParity(perm[:]) {
		coord += NHalfICoordStates
	}
	return coord
}

var (
	iDecodeOnce  sync.Once
	iDecodeTable [NICoordStates][8]uint8
)

func iDecodeInit() {
	var perm [8]uint8
	for i := range perm {
		perm[i] = uint8(i)
	}
	permuteUint8(perm[:], func(p []uint8) {
		var fixed [8]uint8
		copy(fixed[:], p)
		iDecodeTable[EncodeICoord(fixed)] = fixed
	})
}

// DecodeICoord returns the 8-element I-type permutation for a coordinate.
func DecodeICoord(coord int) [8]uint8 {
	iDecodeOnce.Do(iDecodeInit)
	return iDecodeTable[coord]
}

// --- O coordinate: permutation of the 7 O-type pieces. ---

// EncodeOCoord is the 7-piece analogue of EncodeICoord (range 2..6, parity
// offset NHalfOCoordStates).
func EncodeOCoord(perm [7]uint8) int {
	coord := 0
	for i := 2; i < 7; i++ {
		count := 0
		for j := 0; j < i; j++ {
			if perm[j] > perm[i] {
				count++
			}
		}
		coord += count * (factorial[i] / 2)
	}
	if !permutationParity(perm[:]) {
		coord += NHalfOCoordStates
	}
	return coord
}

var (
	oDecodeOnce  sync.Once
	oDecodeTable [NOCoordStates][7]uint8
)

func oDecodeInit() {
	var perm [7]uint8
	for i := range perm {
		perm[i] = uint8(i)
	}
	permuteUint8(perm[:], func(p []uint8) {
		var fixed [7]uint8
		copy(fixed[:], p)
		oDecodeTable[EncodeOCoord(fixed)] = fixed
	})
}

// DecodeOCoord returns the 7-element O-type permutation for a coordinate.
func DecodeOCoord(coord int) [7]uint8 {
	oDecodeOnce.Do(oDecodeInit)
	return oDecodeTable[coord]
}

// permuteUint8 calls f once for every permutation of the given slice, via
// Heap's algorithm. f must not retain the slice it is given.
func permuteUint8(a []uint8, f func([]uint8)) {
	n := len(a)
	c := make([]int, n)
	f(a)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			f(a)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
