package puzzle

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestA4IsGroup(t *testing.T) {
	// identity element 0 must be the identity for every element.
	for i := 0; i < 12; i++ {
		if A4Multiply(0, i) != i || A4Multiply(i, 0) != i {
			t.Fatalf("element %d: identity law failed", i)
		}
	}
	// every element must have an inverse.
	for i := 0; i < 12; i++ {
		found := false
		for j := 0; j < 12; j++ {
			if A4Multiply(i, j) == 0 {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("element %d has no inverse", i)
		}
	}
	// associativity spot-check.
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			for k := 0; k < 12; k++ {
				lhs := A4Multiply(A4Multiply(i, j), k)
				rhs := A4Multiply(i, A4Multiply(j, k))
				if lhs != rhs {
					t.Fatalf("associativity failed for (%d,%d,%d)", i, j, k)
				}
			}
		}
	}
}

func TestA4KC3Decomposition(t *testing.T) {
	for a4 := 0; a4 < 12; a4++ {
		if A4FromK4C3(A4GetK4(a4), A4GetC3(a4)) != a4 {
			t.Fatalf("K4/C3 round trip failed for %d", a4)
		}
	}
}

func TestSolvedStickerIsSolved(t *testing.T) {
	if !SolvedSticker.IsSolved() {
		t.Fatal("SolvedSticker.IsSolved() returned false")
	}
}

func TestSolvedToCubieIsIdentity(t *testing.T) {
	c := SolvedSticker.ToCubie()
	if !c.Equal(Solved()) {
		t.Fatalf("solved sticker state did not convert to identity cubie state: %+v", c)
	}
}

func TestCanonicalMovesAreEvenPermutations(t *testing.T) {
	for m := 0; m < NPhase1Moves; m++ {
		c := Solved().Apply(m)
		if !permutationParity(c.Perm[:]) {
			t.Fatalf("move %d (%s) produced an odd permutation", m, TwistNames[m])
		}
	}
}

func TestMoveOrderReturnsToSolved(t *testing.T) {
	// Every canonical move's direction has order 2, 3 or 4, all dividing 12;
	// applying it at most 12 times must return to solved.
	for m := 0; m < NPhase1Moves; m++ {
		c := Solved()
		steps := 0
		for steps < 12 {
			c = c.Apply(m)
			steps++
			if c.Equal(Solved()) {
				break
			}
		}
		if !c.Equal(Solved()) {
			t.Fatalf("move %d (%s) never returned to solved within 12 applications", m, TwistNames[m])
		}
	}
}

func TestMC4DRoundTrip(t *testing.T) {
	for m := 0; m < NPhase1Moves; m++ {
		triple, _ := CanonicalMoves[m].ToMC4D()
		got, err := TwistFromMC4D(triple[0], triple[1], triple[2])
		if err != nil {
			t.Fatalf("move %d: TwistFromMC4D error: %v", m, err)
		}
		if got.Axis != CanonicalMoves[m].Axis {
			t.Fatalf("move %d: axis mismatch after MC4D round trip: got %d want %d", m, got.Axis, CanonicalMoves[m].Axis)
		}
	}
}

func TestTwistStringNonEmpty(t *testing.T) {
	for m := 0; m < NPhase1Moves; m++ {
		if CanonicalMoves[m].String() == "" {
			t.Fatalf("move %d produced an empty piece-notation string", m)
		}
	}
}

func TestRandomTwistNeverIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		if RandomTwist(rng).IsIdentity() {
			t.Fatal("RandomTwist produced an identity twist")
		}
	}
}

func TestIOCoordRoundTrip(t *testing.T) {
	for coord := 0; coord < NIOCoordStates; coord += 37 {
		mask := DecodeIOCoord(coord)
		if got := EncodeIOCoord(mask); got != coord {
			t.Fatalf("IO coord %d round-tripped to %d", coord, got)
		}
	}
}

func TestICoordRoundTrip(t *testing.T) {
	for coord := 0; coord < NICoordStates; coord += 419 {
		perm := DecodeICoord(coord)
		if got := EncodeICoord(perm); got != coord {
			t.Fatalf("I coord %d round-tripped to %d", coord, got)
		}
	}
}

func TestOCoordRoundTrip(t *testing.T) {
	for coord := 0; coord < NOCoordStates; coord += 53 {
		perm := DecodeOCoord(coord)
		if got := EncodeOCoord(perm); got != coord {
			t.Fatalf("O coord %d round-tripped to %d", coord, got)
		}
	}
}

func TestCubieIntRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := Solved()
	for i := 0; i < 25; i++ {
		c = c.Apply(rng.Intn(NPhase1Moves))
	}
	idx := c.ToInt()
	back := FromInt(idx)
	if !back.Equal(c) {
		t.Fatalf("cubie state did not survive ToInt/FromInt round trip")
	}
}

func TestSolvedIntIsZero(t *testing.T) {
	if Solved().ToInt().Cmp(big.NewInt(0)) != 0 {
		t.Fatal("solved cubie state did not encode to 0")
	}
}

func TestComposeMovesAnnihilateHasInverse(t *testing.T) {
	// Every move must annihilate with at least one other move (its inverse).
	for a := 0; a < NPhase1Moves; a++ {
		found := false
		for b := 0; b < NPhase1Moves; b++ {
			if ComposeMoves(a, b).Kind == Annihilate {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("move %d (%s) has no inverse in the composition table", a, TwistNames[a])
		}
	}
}

func TestParseMoveSequenceRoundTripsNames(t *testing.T) {
	seq := TwistNames[0] + " " + TwistNames[12] + " " + TwistNames[45]
	moves, err := ParseMoveSequence(seq)
	if err != nil {
		t.Fatalf("ParseMoveSequence: %v", err)
	}
	want := []int{0, 12, 45}
	if len(moves) != len(want) {
		t.Fatalf("got %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Fatalf("move %d: got %d want %d", i, moves[i], want[i])
		}
	}
}

func TestParseMoveSequenceRejectsUnknownName(t *testing.T) {
	if _, err := ParseMoveSequence("NOTAMOVE"); err == nil {
		t.Fatal("expected an error for an unknown move name")
	}
}

func TestApplyMatchesCompose(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		c := Solved()
		for j := 0; j < 5; j++ {
			c = c.Apply(rng.Intn(NPhase1Moves))
		}
		m := rng.Intn(NPhase1Moves)
		viaApply := c.Apply(m)
		viaCompose := c.Compose(Solved().Apply(m))
		if !viaApply.Equal(viaCompose) {
			t.Fatalf("Apply and Compose disagree for move %d", m)
		}
	}
}
