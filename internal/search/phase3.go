package search

import (
	"context"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

// Phase3Solutions yields move sequences from the 12-move phase 3 set that
// reach the fully solved state, shortest first, never terminating on its
// own. iHalf is the I coordinate already reduced mod NHalfICoordStates, as
// stored by the phase 3 pruning table (the inner/outer octet parities are
// linked, so that reduction loses no information the search needs).
func (t *Tables) Phase3Solutions(ctx context.Context, iHalf, o, lastAxis int) *Generator {
	return newGenerator(ctx, func(yield func([]int) bool) {
		limit := int(t.Phase3Prune.Get(phase3Index(iHalf, o)))
		for {
			if ctx.Err() != nil {
				return
			}
			if !phase3DFS(t, iHalf, o, nil, limit, lastAxis, yield, ctx) {
				return
			}
			limit++
		}
	})
}

func phase3DFS(t *Tables, iHalf, o int, seq []int, limit, lastAxis int, yield func([]int) bool, ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	bound := int(t.Phase3Prune.Get(phase3Index(iHalf, o)))
	if len(seq)+bound > limit {
		return true
	}
	if iHalf == 0 && o == 0 && len(seq) == limit {
		if !yield(copySeq(seq)) {
			return false
		}
	}
	if len(seq) == limit {
		return true
	}
	group := axisGroup(lastAxis)
	for _, m := range puzzle.Phase3Moves[group] {
		axis := puzzle.TwistAxes[m]
		if axis == lastAxis {
			break
		}
		newI := int(t.I.Get(m, iHalf)) % puzzle.NHalfICoordStates
		newO := int(t.O.Get(m, o))
		if !phase3DFS(t, newI, newO, appendMove(seq, m), limit, axis, yield, ctx) {
			return false
		}
	}
	return true
}

// Phase3CanSolve reports whether the minimal phase 3 solution of (iHalf,
// o) has length at most budget. When the raw pruning bound
// is exactly one more than budget, a solution within budget is still
// possible if some optimal first move shares lastAxis with the move that
// preceded phase 3: merging them at the phase-2/phase-3 boundary cancels
// one move, the way merge(p2, p3) would at a phase boundary.
func (t *Tables) Phase3CanSolve(iHalf, o, budget, lastAxis int) bool {
	if budget < 0 {
		return false
	}
	d := int(t.Phase3Prune.Get(phase3Index(iHalf, o)))
	if d <= budget {
		return true
	}
	if d != budget+1 {
		return false
	}
	for m := 0; m < puzzle.NPhase3Moves; m++ {
		if puzzle.TwistAxes[m] != lastAxis {
			continue
		}
		newI := int(t.I.Get(m, iHalf)) % puzzle.NHalfICoordStates
		newO := int(t.O.Get(m, o))
		if int(t.Phase3Prune.Get(phase3Index(newI, newO))) == d-1 {
			return true
		}
	}
	return false
}
