package search

import (
	"context"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

// Phase1Solutions yields move sequences from the full 92-move set that
// take start into the K4-solved subspace (GetK4Coord() == 0), shortest
// first, never terminating on its own. lastAxis is the axis of whatever
// move preceded start (-1 if none), so the first move in the sequence
// still obeys the same-axis canonical ordering used everywhere else.
func (t *Tables) Phase1Solutions(ctx context.Context, start puzzle.CubieState, lastAxis int) *Generator {
	return newGenerator(ctx, func(yield func([]int) bool) {
		limit := int(t.Phase1Prune.Get(int64(start.GetK4Coord())))
		for {
			if ctx.Err() != nil {
				return
			}
			if !phase1DFS(t, start, nil, limit, lastAxis, yield, ctx) {
				return
			}
			limit++
		}
	})
}

// phase1DFS implements the IDA* depth-limited search: the
// search recurses naturally since phase 1's effective depths are shallow
// (Phase1PruneDepth=6 is only the pruning table's own build depth; the
// search itself deepens past it as needed, but never far past it for a
// reachable start state).
func phase1DFS(t *Tables, node puzzle.CubieState, seq []int, limit, lastAxis int, yield func([]int) bool, ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	bound := int(t.Phase1Prune.Get(int64(node.GetK4Coord())))
	if len(seq)+bound > limit {
		return true
	}
	if node.GetK4Coord() == 0 && len(seq) == limit {
		if !yield(copySeq(seq)) {
			return false
		}
	}
	if len(seq) == limit {
		return true
	}
	group := axisGroup(lastAxis)
	for _, m := range puzzle.Phase1Moves[group] {
		axis := puzzle.TwistAxes[m]
		if axis == lastAxis {
			break
		}
		if !phase1DFS(t, node.Apply(m), appendMove(seq, m), limit, axis, yield, ctx) {
			return false
		}
	}
	return true
}
