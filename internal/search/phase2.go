package search

import (
	"context"

	"github.com/ehrlich-b/hyper4d/internal/puzzle"
)

// Phase2Solutions yields move sequences from the 44-move phase 2 set that
// reach (C3=0, IO=0), shortest first, never terminating on its own.
func (t *Tables) Phase2Solutions(ctx context.Context, c3, io, lastAxis int) *Generator {
	return newGenerator(ctx, func(yield func([]int) bool) {
		limit := int(t.Phase2Prune.Get(phase2Index(c3, io)))
		for {
			if ctx.Err() != nil {
				return
			}
			if !phase2DFS(t, c3, io, nil, limit, lastAxis, yield, ctx) {
				return
			}
			limit++
		}
	})
}

func phase2DFS(t *Tables, c3, io int, seq []int, limit, lastAxis int, yield func([]int) bool, ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	bound := int(t.Phase2Prune.Get(phase2Index(c3, io)))
	if len(seq)+bound > limit {
		return true
	}
	if c3 == 0 && io == 0 && len(seq) == limit {
		if !yield(copySeq(seq)) {
			return false
		}
	}
	if len(seq) == limit {
		return true
	}
	group := axisGroup(lastAxis)
	for _, m := range puzzle.Phase2Moves[group] {
		axis := puzzle.TwistAxes[m]
		if axis == lastAxis {
			break
		}
		newC3 := int(t.C3.Get(m, c3))
		newIO := int(t.IO.Get(m, io))
		if !phase2DFS(t, newC3, newIO, appendMove(seq, m), limit, axis, yield, ctx) {
			return false
		}
	}
	return true
}
