// Package search implements the three-phase IDA* generators (component G)
// and the solver orchestrator that composes them (component H). Each phase
// exposes a lazy generator of move sequences, lengths non-decreasing, the
// idiomatic-Go replacement for Python-style
// generator functions: a goroutine does the producing, a channel of
// capacity 1 gives one-at-a-time backpressure, and ctx cancellation lets a
// caller stop consuming at any yield boundary without leaking the producer.
package search

import "context"

// Generator lazily produces move sequences (as canonical move indices), one
// at a time and in strictly non-decreasing length.
type Generator struct {
	ctx context.Context
	out chan []int
}

// newGenerator starts produce on its own goroutine. produce must call
// yield for every sequence it wants to emit, in order, and stop as soon as
// yield returns false (the consumer went away or ctx was cancelled).
func newGenerator(ctx context.Context, produce func(yield func(seq []int) bool)) *Generator {
	g := &Generator{ctx: ctx, out: make(chan []int, 1)}
	go func() {
		defer close(g.out)
		produce(func(seq []int) bool {
			select {
			case g.out <- seq:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()
	return g
}

// Next blocks for the next move sequence. ok is false once the generator
// is exhausted or its context has been cancelled.
func (g *Generator) Next() (seq []int, ok bool) {
	select {
	case seq, ok = <-g.out:
		return seq, ok
	case <-g.ctx.Done():
		return nil, false
	}
}

// copySeq returns an independent copy of a move sequence, since the DFS
// reuses its accumulator slice across sibling branches.
func copySeq(seq []int) []int {
	out := make([]int, len(seq))
	copy(out, seq)
	return out
}

// appendMove forces a fresh backing array so that a move pushed by one
// branch of the search never gets overwritten by a sibling branch that
// also appends past the same length.
func appendMove(seq []int, m int) []int {
	return append(seq[:len(seq):len(seq)], m)
}

// axisGroup returns the move-ordering group to start from after a move on
// lastAxis (or group 0 if there was no previous move, lastAxis < 0).
func axisGroup(lastAxis int) int {
	if lastAxis < 0 {
		return 0
	}
	return (lastAxis + 1) % 4
}
