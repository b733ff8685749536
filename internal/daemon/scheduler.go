package daemon

import (
	"sync"
	"time"

	"github.com/bnema/loupe/internal/application/port"
)

// loopScheduler arms tick callbacks with time.AfterFunc but hands them back
// to the daemon's event loop for execution, so ticks and control commands
// run on the same goroutine and never interleave.
type loopScheduler struct {
	post func(func())

	mu    sync.Mutex
	timer *time.Timer
}

var _ port.Scheduler = (*loopScheduler)(nil)

func newLoopScheduler(post func(func())) *loopScheduler {
	return &loopScheduler{post: post}
}

// ScheduleAfter replaces any pending callback with fn, fired after d.
func (s *loopScheduler) ScheduleAfter(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, func() {
		s.post(fn)
	})
}

// Cancel drops the pending callback. A callback already handed to the loop
// may still run; the session's own active check makes that a no-op.
func (s *loopScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
