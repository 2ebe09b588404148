package puzzle

// This file builds the alternating group A4 (even permutations of 4
// elements, order 12) as the semidirect product K4 (x) C3: the Klein
// four-group {identity, (01)(23), (02)(13), (03)(12)} is normal in A4, and
// A4/K4 is cyclic of order 3. Every A4 element is built once as
// k4Reps[k] composed with c3Reps[c], and its index is fixed at 3*k+c so
// that GetK4/GetC3 (k4 := a4/3, c3 := a4%3) fall out of the construction
// for free, matching the coordinate definitions used elsewhere.

// k4Reps are representative permutations of {0,1,2,3} for each K4 coset.
var k4Reps = [4][4]int{
	{0, 1, 2, 3},
	{1, 0, 3, 2},
	{2, 3, 0, 1},
	{3, 2, 1, 0},
}

// c3Reps are representative permutations of {0,1,2,3} for each C3 coset
// (all fixing element 3).
var c3Reps = [3][4]int{
	{0, 1, 2, 3},
	{1, 2, 0, 3},
	{2, 0, 1, 3},
}

// composePerm returns the permutation obtained by applying p then q:
// result[x] = q[p[x]].
func composePerm(p, q [4]int) [4]int {
	var out [4]int
	for x := 0; x < 4; x++ {
		out[x] = q[p[x]]
	}
	return out
}

// A4Perms[i] is the permutation of {0,1,2,3} represented by orientation
// index i (0..11), with i = 3*k4 + c3.
var A4Perms [12][4]int

// a4Index maps a permutation array back to its A4 index.
var a4Index = map[[4]int]int{}

// A4Table is the Cayley multiplication table: A4Table[i][j] is the index of
// composePerm(A4Perms[i], A4Perms[j]).
var A4Table [12][12]int

func init() {
	for k := 0; k < 4; k++ {
		for c := 0; c < 3; c++ {
			idx := 3*k + c
			A4Perms[idx] = composePerm(k4Reps[k], c3Reps[c])
			a4Index[A4Perms[idx]] = idx
		}
	}
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			A4Table[i][j] = a4Index[composePerm(A4Perms[i], A4Perms[j])]
		}
	}
}

// A4Multiply composes two A4 elements given by index.
func A4Multiply(i, j int) int {
	return A4Table[i][j]
}

// A4IndexOfPermutation looks up the A4 index of a permutation of
// {0,1,2,3}; ok is false if the permutation is odd (not in A4).
func A4IndexOfPermutation(p [4]int) (idx int, ok bool) {
	idx, ok = a4Index[p]
	return
}

// A4GetK4 returns the K4 coset (0..3) of an A4 index.
func A4GetK4(a4 int) int { return a4 / 3 }

// A4GetC3 returns the C3 coset (0..2) of an A4 index.
func A4GetC3(a4 int) int { return a4 % 3 }

// A4FromK4C3 builds an A4 index from its K4 and C3 components.
func A4FromK4C3(k4, c3 int) int { return 3*k4 + c3 }

// permutationParity reports whether the given permutation (a slice
// containing each of 0..len(p)-1 exactly once) is even.
func permutationParity(p []uint8) bool {
	seen := make([]bool, len(p))
	even := true
	for i := 0; i < len(p); i++ {
		if seen[i] {
			continue
		}
		cycleLen := 0
		j := i
		for !seen[j] {
			seen[j] = true
			j = int(p[j])
			cycleLen++
		}
		if cycleLen%2 == 0 {
			even = !even
		}
	}
	return even
}
