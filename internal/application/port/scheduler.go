package port

import "time"

// Scheduler arms a single deferred callback. The magnifier loop re-arms
// itself through it after every tick, so ticks can never overlap: the next
// one is only scheduled once the current one has finished.
type Scheduler interface {
	// ScheduleAfter runs fn once after d, replacing any pending callback.
	ScheduleAfter(d time.Duration, fn func())

	// Cancel drops the pending callback, if any.
	Cancel()
}
