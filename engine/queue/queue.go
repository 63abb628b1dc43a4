// Package queue provides a FIFO whose dequeue is gated by a minimum
// wall-clock interval. Pushing is always allowed; popping succeeds only
// once enough time has accumulated since the last successful pop.
//
// The queue does no locking of its own: the caller serializes access,
// typically under the lock that also guards the rest of its state.
package queue

import "time"

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time { return time.Now() }

// Timed is an ordered queue with a cooldown gate on Pop.
//
// Elapsed time is accumulated across Pop calls (time.Time subtraction
// uses the monotonic clock). An unsuccessful Pop does not reset the
// accumulator, and a Pop that clears the gate but finds the queue empty
// still consumes the window, so an element pushed right after is not
// delayed beyond the original cooldown.
type Timed[T any] struct {
	clock    Clock
	cooldown time.Duration
	elapsed  time.Duration
	last     time.Time
	items    []T
}

// NewTimed creates a queue with the given cooldown. A nil clock means
// SystemClock. The gate starts open: the first Pop is not delayed.
func NewTimed[T any](cooldown time.Duration, clock Clock) *Timed[T] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timed[T]{
		clock:    clock,
		cooldown: cooldown,
		elapsed:  cooldown,
		last:     clock.Now(),
	}
}

// Push appends v to the tail. It never blocks and never fails.
func (q *Timed[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes and returns the head element if the accumulated elapsed
// time since the last successful Pop has reached the cooldown.
// Otherwise it returns the zero value and false without touching the
// queue or the accumulator.
func (q *Timed[T]) Pop() (T, bool) {
	var zero T
	now := q.clock.Now()
	q.elapsed += now.Sub(q.last)
	q.last = now

	if q.elapsed < q.cooldown {
		return zero, false
	}
	q.elapsed = 0
	if len(q.items) == 0 {
		return zero, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// SetCooldown replaces the cooldown for future pops. Time already
// accumulated toward the gate is kept as-is.
func (q *Timed[T]) SetCooldown(d time.Duration) {
	q.cooldown = d
}

// Cooldown returns the current cooldown.
func (q *Timed[T]) Cooldown() time.Duration { return q.cooldown }

// Len returns the number of queued elements.
func (q *Timed[T]) Len() int { return len(q.items) }
