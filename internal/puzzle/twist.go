package puzzle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Direction is a displacement in the 3-space orthogonal to a twist's axis,
// together with the derived quantities used to build its rotation matrix.
type Direction struct {
	Vec    [3]int
	L1Norm int
	Order  int
}

// NewDirection builds a Direction from a raw displacement vector. Order is 4
// for a face-diagonal-free unit vector (L1 norm 1) and otherwise equals the
// L1 norm, matching the reference's order = 4 if l1_norm == 1 else l1_norm.
func NewDirection(vec [3]int) Direction {
	l1 := abs(vec[0]) + abs(vec[1]) + abs(vec[2])
	order := l1
	if l1 == 1 {
		order = 4
	}
	return Direction{Vec: vec, L1Norm: l1, Order: order}
}

// Twist is a single generator move of the puzzle: rotate every piece whose
// coordinate along Axis agrees in sign with Side, by Amount steps of Dir's
// rotation.
type Twist struct {
	Axis   int
	Dir    Direction
	Side   int
	Amount int

	matrix [4][4]int
}

// NewTwist builds a twist and normalizes its amount into (-order/2, order/2].
func NewTwist(axis int, dir Direction, side, amount int) Twist {
	t := Twist{Axis: axis, Dir: dir, Side: side, Amount: amount}
	t.normalizeAmount()
	t.matrix = t.computeMatrix()
	return t
}

func (t *Twist) normalizeAmount() {
	if t.Dir.Order == 0 {
		return
	}
	t.Amount = ((t.Amount % t.Dir.Order) + t.Dir.Order) % t.Dir.Order
	if abs(t.Amount-t.Dir.Order) < t.Amount {
		t.Amount -= t.Dir.Order
	}
}

// IsIdentity reports whether the twist moves nothing, either because its
// direction is zero or its (normalized) amount is a multiple of its order.
func (t Twist) IsIdentity() bool {
	return t.Dir.L1Norm == 0 || (t.Dir.Order != 0 && t.Amount%t.Dir.Order == 0)
}

// computeMatrix builds the 4x4 integer rotation matrix for this twist via
// Rodrigues' rotation formula in the 3-space orthogonal to Axis, embedded
// back into 4 dimensions with an identity row/column at Axis. All twist
// angles here are exact multiples of pi/2 or 2*pi/3, so the float64 result
// rounds exactly to an integer matrix.
func (t Twist) computeMatrix() [4][4]int {
	var m [4][4]int
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	if t.Dir.L1Norm == 0 || t.Amount == 0 {
		return m
	}

	l2 := math.Sqrt(float64(t.Dir.Vec[0]*t.Dir.Vec[0] + t.Dir.Vec[1]*t.Dir.Vec[1] + t.Dir.Vec[2]*t.Dir.Vec[2]))
	sign := 1.0
	if t.Side < 0 {
		sign = -1.0
	}
	k := [3]float64{
		sign * float64(t.Dir.Vec[0]) / l2,
		sign * float64(t.Dir.Vec[1]) / l2,
		sign * float64(t.Dir.Vec[2]) / l2,
	}
	theta := float64(t.Amount) * 2 * math.Pi / float64(t.Dir.Order)
	s, c := math.Sin(theta), math.Cos(theta)

	// Rodrigues: R = I + sin(theta) K + (1 - cos(theta)) K^2, K the cross-product matrix of k.
	var kx [3][3]float64
	kx[0] = [3]float64{0, -k[2], k[1]}
	kx[1] = [3]float64{k[2], 0, -k[0]}
	kx[2] = [3]float64{-k[1], k[0], 0}

	var kx2 [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for l := 0; l < 3; l++ {
				sum += kx[i][l] * kx[l][j]
			}
			kx2[i][j] = sum
		}
	}

	var r3 [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := 0.0
			if i == j {
				v = 1
			}
			r3[i][j] = v + s*kx[i][j] + (1-c)*kx2[i][j]
		}
	}

	// Embed r3 into the 4x4 matrix, skipping row/column Axis.
	dims := [3]int{}
	idx := 0
	for d := 0; d < 4; d++ {
		if d == t.Axis {
			continue
		}
		dims[idx] = d
		idx++
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[dims[i]][dims[j]] = int(math.Round(r3[i][j]))
		}
	}
	return m
}

// RotateVector applies the twist's rotation matrix to a length-4 vector.
func (t Twist) RotateVector(v [4]int) [4]int {
	var out [4]int
	for i := 0; i < 4; i++ {
		sum := 0
		for j := 0; j < 4; j++ {
			sum += t.matrix[i][j] * v[j]
		}
		out[i] = sum
	}
	return out
}

// dirAxisSigns mirrors the reference's fixed per-axis sign convention used
// when building the MC4D twist-parameter catalog.
var dirAxisSigns = [4]int{1, -1, 1, -1}

type mc4dParam struct {
	Axis int
	Dir  [3]int
	Side int
}

var mc4dCatalog [216]mc4dParam

func init() {
	axisList := [8]int{3, 2, 1, 0, 0, 1, 2, 3}
	axisSideList := [8]int{1, -1, 1, -1, 1, -1, 1, -1}

	type bucketed struct {
		l1norm int
		order  int
		p      mc4dParam
	}
	var all []bucketed

	for i := 0; i < 8; i++ {
		axis := axisList[i]
		side := axisSideList[i]
		for a := -1; a <= 1; a++ {
			for b := -1; b <= 1; b++ {
				for c := -1; c <= 1; c++ {
					coord := [3]int{a, b, c}
					// delete the component at `axis` from the flipped dirAxisSigns vector,
					// then multiply component-wise with the remaining 3 axis signs.
					var reduced [3]int
					idx := 0
					for d := 0; d < 4; d++ {
						if d == axis {
							continue
						}
						reduced[idx] = dirAxisSigns[d]
						idx++
					}
					var dir [3]int
					for d := 0; d < 3; d++ {
						dir[d] = coord[d] * reduced[d]
					}
					l1 := abs(dir[0]) + abs(dir[1]) + abs(dir[2])
					all = append(all, bucketed{l1norm: l1, p: mc4dParam{Axis: axis, Dir: dir, Side: side}})
				}
			}
		}
	}

	// Bucket by descending L1 norm (3,2,1,0) exactly as the reference
	// iterates `3 - sum(abs(coord))` ascending, i.e. L1 descending.
	order := 0
	for l1 := 3; l1 >= 0; l1-- {
		for _, b := range all {
			if b.l1norm == l1 {
				mc4dCatalog[order] = b.p
				order++
			}
		}
	}
}

// TwistFromMC4D builds a Twist from an MC4D wire-format triple.
func TwistFromMC4D(code, amount, layer int) (Twist, error) {
	if code < 0 || code >= len(mc4dCatalog) {
		return Twist{}, fmt.Errorf("puzzle: mc4d code %d out of range", code)
	}
	p := mc4dCatalog[code]
	axis, dir, side := p.Axis, p.Dir, p.Side

	switch layer {
	case 2:
		side = -side
		dir = [3]int{-dir[0], -dir[1], -dir[2]}
	case 3:
		if side == -1 {
			side = 1
			dir = [3]int{-dir[0], -dir[1], -dir[2]}
		}
		side = 0
	}

	return NewTwist(axis, NewDirection(dir), side, amount), nil
}

// ToMC4D converts the twist back into one or two MC4D wire-format triples
// (two when Amount is exactly 2, since the wire format has no native
// "double twist" token).
func (t Twist) ToMC4D() ([3]int, bool) {
	side := 1
	if t.Side < 0 {
		side = -1
	} else if t.Side == 0 {
		side = 0
	}
	for code, p := range mc4dCatalog {
		if p.Axis != t.Axis || p.Dir != t.Dir.Vec {
			continue
		}
		pside := 1
		if p.Side < 0 {
			pside = -1
		}
		if side != 0 && pside != side {
			continue
		}
		layer := 1
		if t.Side == 0 {
			layer = 3
		}
		if t.Amount == 2 {
			return [3]int{code, 1, layer}, true
		}
		return [3]int{code, t.Amount, layer}, false
	}
	return [3]int{}, false
}

var axisNames = [2][4]string{
	{"L", "B", "D", "O"},
	{"R", "F", "U", "I"},
}

// String renders the twist in piece notation, e.g. "RFU'", matching the
// reference's to_piece_notation.
func (t Twist) String() string {
	axis, dir, side, amount := t.Axis, t.Dir.Vec, t.Side, t.Amount
	if dirAxisSigns[axis] < 0 {
		amount = -amount
		dir = [3]int{-dir[0], -dir[1], -dir[2]}
	}
	norm := ((amount % 4) + 4) % 4
	if norm > 2 {
		norm -= 4
	}

	var b strings.Builder
	sideIdx := 0
	if side > 0 {
		sideIdx = 1
	}
	first := axisNames[sideIdx][axis]
	if side == 0 {
		first = strings.ToLower(first)
	}
	b.WriteString(first)

	for d := 0; d < 3; d++ {
		if dir[d] == 0 {
			continue
		}
		dimAxis := d
		if d >= axis {
			dimAxis = d + 1
		}
		idx := 0
		if dir[d] > 0 {
			idx = 1
		}
		letter := axisNames[idx][dimAxis]
		if side == 0 {
			letter = strings.ToLower(letter)
		}
		b.WriteString(letter)
	}

	switch norm {
	case 2:
		b.WriteString("2")
	case -1:
		b.WriteString("'")
	}
	return b.String()
}

// RandomTwist produces a uniformly random MC4D-parameterized twist (random
// catalog entry, random nonzero amount), matching the reference's
// Twist.random_mc4d.
func RandomTwist(rng *rand.Rand) Twist {
	for {
		code := rng.Intn(len(mc4dCatalog))
		p := mc4dCatalog[code]
		dir := NewDirection(p.Dir)
		if dir.Order == 0 {
			continue
		}
		amount := 1 + rng.Intn(dir.Order-1)
		t := NewTwist(p.Axis, dir, p.Side, amount)
		if !t.IsIdentity() {
			return t
		}
	}
}

// CanonicalMoves holds the 92 canonical moves in the fixed order used
// everywhere else in this package, constructed from TwistMC4DNames.
var CanonicalMoves [NPhase1Moves]Twist

func init() {
	for i, name := range TwistMC4DNames {
		tokens := strings.Fields(name)
		code, amount, layer := parseMC4DToken(tokens[0])
		if len(tokens) == 2 {
			amount = 2
		}
		t, err := TwistFromMC4D(code, amount, layer)
		if err != nil {
			panic(fmt.Sprintf("puzzle: building canonical move %d: %v", i, err))
		}
		if t.Axis != TwistAxes[i] {
			panic(fmt.Sprintf("puzzle: canonical move %d axis mismatch: got %d want %d", i, t.Axis, TwistAxes[i]))
		}
		CanonicalMoves[i] = t
	}
}

func parseMC4DToken(tok string) (code, amount, layer int) {
	parts := strings.Split(tok, ",")
	code, _ = strconv.Atoi(parts[0])
	amount, _ = strconv.Atoi(parts[1])
	layer, _ = strconv.Atoi(parts[2])
	return
}
