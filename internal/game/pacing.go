package game

import (
	"sync"
	"time"
)

// Scheduler holds at most one pending narrative continuation: a beat that the
// driver should fire after a short pacing delay (the "check phone, then get
// ready" kind of moment). The engine never runs its own timers; the driver
// polls Pending and calls Fire, so all state mutation stays on one control
// path. Reset cancels the owned handle, not some global sweep.
type Scheduler struct {
	mu      sync.Mutex
	seq     uint64
	pending *beat
}

type beat struct {
	id    uint64
	delay time.Duration
	fn    func()
}

// Schedule replaces any pending continuation with fn, to be fired after
// delay. Returns the handle ID, mostly for logging.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending = &beat{id: s.seq, delay: delay, fn: fn}
	return s.seq
}

// Pending reports whether a continuation is waiting, and its delay.
func (s *Scheduler) Pending() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return 0, false
	}
	return s.pending.delay, true
}

// Fire runs and clears the pending continuation, if any.
func (s *Scheduler) Fire() {
	s.mu.Lock()
	b := s.pending
	s.pending = nil
	s.mu.Unlock()
	if b != nil {
		b.fn()
	}
}

// Cancel drops the pending continuation without running it.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}
