// Package stack hands out monotonically increasing stacking orders for
// windows sharing a surface.
package stack

import "sync/atomic"

// DefaultBaseline is where counting starts. High enough that the values
// are visually meaningless, far below any practical stacking ceiling.
const DefaultBaseline = 100

// Registry is the stacking-order counter shared by every window on one
// surface. It is owned by the surface manager rather than being package
// state, so independent surfaces (and tests) never share a counter.
//
// Increments are atomic; the single-writer discipline of the event loop
// does not strictly need that, but it keeps the read-then-write sequence
// safe if the host ever drives the surface from more than one goroutine.
type Registry struct {
	counter atomic.Int64
}

// NewRegistry returns a registry counting up from baseline. A baseline
// of zero or less falls back to DefaultBaseline.
func NewRegistry(baseline int) *Registry {
	if baseline <= 0 {
		baseline = DefaultBaseline
	}
	r := &Registry{}
	r.counter.Store(int64(baseline))
	return r
}

// Next increments the counter and returns the new value. Every value it
// hands out strictly exceeds all previously assigned stack orders.
func (r *Registry) Next() int {
	return int(r.counter.Add(1))
}

// Max returns the highest stack order assigned so far (the baseline if
// none have been).
func (r *Registry) Max() int {
	return int(r.counter.Load())
}
