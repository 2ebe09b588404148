package tables

import "sync/atomic"

// Status is a snapshot of a generation run's progress, safe to read
// concurrently while generation proceeds on another goroutine.
type Status struct {
	Stage   string
	Done    int64
	Total   int64
}

// Tracker publishes generation progress for an optional remote status
// endpoint (see progressserver.go) to read while a multi-hour run proceeds.
type Tracker struct {
	stage atomic.Value // string
	done  atomic.Int64
	total atomic.Int64
}

// NewTracker returns a Tracker with an empty initial stage.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.stage.Store("")
	return t
}

// Begin resets the tracker for a new named stage with the given total unit count.
func (t *Tracker) Begin(stage string, total int64) {
	t.stage.Store(stage)
	t.total.Store(total)
	t.done.Store(0)
}

// Advance adds delta units of progress to the current stage.
func (t *Tracker) Advance(delta int64) {
	t.done.Add(delta)
}

// Snapshot returns the current stage name and progress counts.
func (t *Tracker) Snapshot() Status {
	stage, _ := t.stage.Load().(string)
	return Status{Stage: stage, Done: t.done.Load(), Total: t.total.Load()}
}
