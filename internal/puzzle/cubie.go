package puzzle

import "math/big"

// CubieState is the cubie-level representation of a puzzle configuration:
// for each of the 15 tracked pieces, which piece now occupies its slot
// (Perm, "is replaced by") and that piece's orientation in A4 (A4).
type CubieState struct {
	Perm [15]uint8
	A4   [15]uint8
}

// Solved returns the identity cubie state.
func Solved() CubieState {
	var c CubieState
	for i := range c.Perm {
		c.Perm[i] = uint8(i)
	}
	return c
}

// Equal reports whether two cubie states are identical.
func (c CubieState) Equal(o CubieState) bool {
	return c.Perm == o.Perm && c.A4 == o.A4
}

// PermListMoveTable[m][i] is the piece that ends up at slot i after
// applying canonical move m to the solved cube; A4ListMoveTable[m][i] is
// that piece's raw orientation contribution. Both are derived directly
// from simulating the move at the sticker level exactly once each, since
// 92*15 entries is cheap enough to compute eagerly.
var (
	PermListMoveTable [NPhase1Moves][15]uint8
	A4ListMoveTable   [NPhase1Moves][15]uint8
)

func init() {
	for m, t := range CanonicalMoves {
		c := SolvedSticker.Twist(t).ToCubie()
		PermListMoveTable[m] = c.Perm
		A4ListMoveTable[m] = c.A4
	}
}

// Apply returns the cubie state obtained by applying canonical move m.
func (c CubieState) Apply(m int) CubieState {
	var out CubieState
	permTable := PermListMoveTable[m]
	a4Table := A4ListMoveTable[m]
	for i := 0; i < 15; i++ {
		src := permTable[i]
		out.Perm[i] = c.Perm[src]
		out.A4[i] = uint8(A4Multiply(int(c.A4[src]), int(a4Table[i])))
	}
	return out
}

// Compose returns c followed by o (o applied to the result of c), i.e. the
// cubie-level group product of two arbitrary states.
func (c CubieState) Compose(o CubieState) CubieState {
	var out CubieState
	for i := 0; i < 15; i++ {
		src := o.Perm[i]
		out.Perm[i] = c.Perm[src]
		out.A4[i] = uint8(A4Multiply(int(c.A4[src]), int(o.A4[i])))
	}
	return out
}

// GetK4List returns each tracked piece's K4 coset.
func (c CubieState) GetK4List() [15]uint8 {
	var out [15]uint8
	for i, a := range c.A4 {
		out[i] = uint8(A4GetK4(int(a)))
	}
	return out
}

// GetK4Coord encodes the K4 list as a base-4 integer (the phase 1 coordinate).
func (c CubieState) GetK4Coord() int {
	k4 := c.GetK4List()
	coord := 0
	for i := 14; i >= 0; i-- {
		coord = coord*4 + int(k4[i])
	}
	return coord
}

// FromK4Coord builds a cubie state with solved permutation and C3
// components, and K4 components from the given phase 1 coordinate.
func FromK4Coord(coord int) CubieState {
	c := Solved()
	for i := 0; i < 15; i++ {
		k4 := coord % 4
		coord /= 4
		c.A4[i] = uint8(A4FromK4C3(k4, 0))
	}
	return c
}

// GetC3Coord encodes the C3 cosets of the first 14 pieces as a base-3
// integer; the 15th is determined by the constraint that the cosets sum to
// 0 mod 3 (phase 2's orientation invariant).
func (c CubieState) GetC3Coord() int {
	coord := 0
	for i := 13; i >= 0; i-- {
		coord = coord*3 + A4GetC3(int(c.A4[i]))
	}
	return coord
}

// FromC3Coord builds a cubie state with solved permutation and K4
// components, and C3 components from the given coordinate.
func FromC3Coord(coord int) CubieState {
	c := Solved()
	var c3 [15]int
	sum := 0
	for i := 0; i < 14; i++ {
		c3[i] = coord % 3
		coord /= 3
		sum += c3[i]
	}
	c3[14] = ((-sum) % 3 + 3) % 3
	for i := 0; i < 15; i++ {
		c.A4[i] = uint8(A4FromK4C3(0, c3[i]))
	}
	return c
}

// GetIOCoord encodes which tracked slots hold O-type pieces (permutation
// value > 7) as the phase-2 IO coordinate.
func (c CubieState) GetIOCoord() int {
	var mask [15]bool
	for i, p := range c.Perm {
		mask[i] = p > 7
	}
	return EncodeIOCoord(mask)
}

// GetICoord encodes the relative order of the 8 I-type pieces (permutation
// values 0..7) as the phase 3 I coordinate.
func (c CubieState) GetICoord() int {
	var perm [8]uint8
	n := 0
	for _, p := range c.Perm {
		if p < 8 {
			perm[n] = p
			n++
		}
	}
	return EncodeICoord(perm)
}

// GetOCoord encodes the relative order of the 7 O-type pieces (permutation
// values 8..14, rebased to 0..6) as the phase 3 O coordinate.
func (c CubieState) GetOCoord() int {
	var perm [7]uint8
	n := 0
	for _, p := range c.Perm {
		if p > 7 {
			perm[n] = p - 8
			n++
		}
	}
	return EncodeOCoord(perm)
}

// FromPermutationCoords builds a cubie state (solved orientation) whose
// permutation matches the given IO/I/O coordinates.
func FromPermutationCoords(ioCoord, iCoord, oCoord int) CubieState {
	c := Solved()
	mask := DecodeIOCoord(ioCoord)
	iPerm := DecodeICoord(iCoord)
	oPerm := DecodeOCoord(oCoord)
	ii, oi := 0, 0
	for slot := 0; slot < 15; slot++ {
		if mask[slot] {
			c.Perm[slot] = oPerm[oi] + 8
			oi++
		} else {
			c.Perm[slot] = iPerm[ii]
			ii++
		}
	}
	return c
}

// FromCoords builds a full cubie state from all four coordinates.
func FromCoords(c3Coord, ioCoord, iCoord, oCoord int) CubieState {
	c := FromPermutationCoords(ioCoord, iCoord, oCoord)
	c3 := FromC3Coord(c3Coord)
	for i := range c.A4 {
		c.A4[i] = c3.A4[i]
	}
	return c
}

// GetPhase1Node returns the phase 1 coordinate (K4 list only).
func (c CubieState) GetPhase1Node() int { return c.GetK4Coord() }

// GetPhase2Node returns the phase 2 coordinate: IO * N_C3 + C3.
func (c CubieState) GetPhase2Node() int {
	return c.GetIOCoord()*NC3CoordStates + c.GetC3Coord()
}

// GetPhase3Node returns the phase 3 coordinate: O * N_HALF_I + (I mod N_HALF_I).
func (c CubieState) GetPhase3Node() int {
	return c.GetOCoord()*NHalfICoordStates + c.GetICoord()%NHalfICoordStates
}

// ToInt encodes the full cubie state as the puzzle's global state index.
func (c CubieState) ToInt() *big.Int {
	o := big.NewInt(int64(c.GetOCoord()))
	i := big.NewInt(int64(c.GetICoord() % NHalfICoordStates))
	index := new(big.Int).Mul(o, big.NewInt(NHalfICoordStates))
	index.Add(index, i)
	index.Mul(index, big.NewInt(NIOCoordStates))
	index.Add(index, big.NewInt(int64(c.GetIOCoord())))
	index.Mul(index, big.NewInt(NC3CoordStates))
	index.Add(index, big.NewInt(int64(c.GetC3Coord())))
	index.Mul(index, big.NewInt(NPhase1States))
	index.Add(index, big.NewInt(int64(c.GetK4Coord())))
	return index
}

// FromInt decodes a global state index back into a cubie state. ToInt
// stores only I mod NHalfICoordStates (the other half is implied by the
// overall permutation's parity, which must be even), so decode picks
// whichever of the two possible I coordinates makes the reconstructed
// permutation even.
func FromInt(index *big.Int) CubieState {
	n := new(big.Int).Set(index)
	mod := new(big.Int)

	n.DivMod(n, big.NewInt(NPhase1States), mod)
	k4Coord := int(mod.Int64())

	n.DivMod(n, big.NewInt(NC3CoordStates), mod)
	c3Coord := int(mod.Int64())

	n.DivMod(n, big.NewInt(NIOCoordStates), mod)
	ioCoord := int(mod.Int64())

	n.DivMod(n, big.NewInt(NHalfICoordStates), mod)
	iCoordHalf := int(mod.Int64())

	oCoord := int(n.Int64())

	c := FromCoords(c3Coord, ioCoord, iCoordHalf, oCoord)
	if !permutationParity(c.Perm[:]) {
		c = FromCoords(c3Coord, ioCoord, iCoordHalf+NHalfICoordStates, oCoord)
	}

	k4 := FromK4Coord(k4Coord)
	for i := range c.A4 {
		c3 := A4GetC3(int(c.A4[i]))
		k := A4GetK4(int(k4.A4[i]))
		c.A4[i] = uint8(A4FromK4C3(k, c3))
	}

	return c
}
