package search

import (
	"context"
	"math"
	"time"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

// Solution is one yielded candidate from Solve: a move sequence, already
// merged across phase boundaries, strictly shorter than every solution
// yielded before it within the same Solve call.
type Solution struct {
	Moves []int
}

// Options customizes a Solve call with progress callbacks, since the CLI
// layer that would print them is out of scope for the core itself.
type Options struct {
	// OnImprovement is called, if set, with every yielded solution's moves
	// before it is sent on the result channel.
	OnImprovement func(moves []int)
	// OnLowerBoundAdvance is called, if set, whenever the phase 1
	// generator yields a sequence longer than the previous one, with that
	// new length, giving a lower-bound-on-optimality progress signal. IDA*
	// depths at which phase 1 yields nothing are not reported.
	OnLowerBoundAdvance func(bound int)
}

// Solve streams ever-shorter solutions for start, stopping once the outer
// phase-1 loop proves optimality or ctx is cancelled. Pass
// maxLen = -1 (or any negative number) for no initial bound. The returned
// channel is closed when the search is exhausted or cancelled; when it
// closes because the search was exhausted, the last value received, if
// any, is optimal.
func Solve(ctx context.Context, t *Tables, start puzzle.CubieState, maxLen int, opts Options) <-chan Solution {
	out := make(chan Solution, 1)
	best := maxLen
	if best < 0 {
		best = math.MaxInt32
	}

	go func() {
		defer close(out)

		p1gen := t.Phase1Solutions(ctx, start, -1)
		lastP1Limit := -1
		for {
			p1, ok := p1gen.Next()
			if !ok {
				return
			}
			if opts.OnLowerBoundAdvance != nil && len(p1) != lastP1Limit {
				lastP1Limit = len(p1)
				opts.OnLowerBoundAdvance(lastP1Limit)
			}
			if len(p1) >= best {
				return
			}

			c2 := applySeq(start, p1)
			lastAxis1 := -1
			if len(p1) > 0 {
				lastAxis1 = puzzle.TwistAxes[p1[len(p1)-1]]
			}

			p2gen := t.Phase2Solutions(ctx, c2.GetC3Coord(), c2.GetIOCoord(), lastAxis1)
			for {
				p2, ok := p2gen.Next()
				if !ok {
					break
				}

				merged12 := merge(p1, p2)
				if len(merged12) >= best {
					break
				}

				c3 := applySeq(c2, p2)
				lastAxis2 := lastAxis1
				if len(p2) > 0 {
					lastAxis2 = puzzle.TwistAxes[p2[len(p2)-1]]
				}

				iHalf := c3.GetICoord() % puzzle.NHalfICoordStates
				o := c3.GetOCoord()
				if !t.Phase3CanSolve(iHalf, o, best-len(merged12)-1, lastAxis2) {
					continue
				}

				p3gen := t.Phase3Solutions(ctx, iHalf, o, lastAxis2)
				p3, ok := p3gen.Next()
				if !ok {
					continue
				}

				solution := merge(merged12, p3)
				if len(solution) >= best {
					continue
				}
				best = len(solution)

				if opts.OnImprovement != nil {
					opts.OnImprovement(solution)
				}
				select {
				case out <- Solution{Moves: solution}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// SolveUntil is the time-bounded companion to Solve: it runs an unbounded
// search and returns the
// best solution found once sinceLastImprovement has elapsed without a
// shorter one, or once the search proves optimality first.
func SolveUntil(ctx context.Context, t *Tables, start puzzle.CubieState, sinceLastImprovement time.Duration) (Solution, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := Solve(ctx, t, start, -1, Options{})
	best, ok := <-results
	if !ok {
		return Solution{}, false
	}

	timer := time.NewTimer(sinceLastImprovement)
	defer timer.Stop()
	for {
		select {
		case sol, ok := <-results:
			if !ok {
				return best, true
			}
			best = sol
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(sinceLastImprovement)
		case <-timer.C:
			return best, true
		case <-ctx.Done():
			return best, true
		}
	}
}

// applySeq returns c with every move in seq applied in order.
func applySeq(c puzzle.CubieState, seq []int) puzzle.CubieState {
	for _, m := range seq {
		c = c.Apply(m)
	}
	return c
}

// merge joins two adjacent move sequences, consulting the composition
// table at the seam: Concatenate keeps both moves,
// Annihilate drops both, Replace fuses them into a single move.
func merge(a, b []int) []int {
	if len(a) == 0 {
		return copySeq(b)
	}
	if len(b) == 0 {
		return copySeq(a)
	}
	res := puzzle.ComposeMoves(a[len(a)-1], b[0])
	out := make([]int, 0, len(a)+len(b))
	switch res.Kind {
	case puzzle.Annihilate:
		out = append(out, a[:len(a)-1]...)
		out = append(out, b[1:]...)
	case puzzle.Replace:
		out = append(out, a[:len(a)-1]...)
		out = append(out, int(res.Move))
		out = append(out, b[1:]...)
	default:
		out = append(out, a...)
		out = append(out, b...)
	}
	return out
}
