package snake

import (
	"sync"
	"time"
)

// Scheduler owns the tick timer. At most one ticker is live at a time:
// Reconfigure stops the old ticker before starting the new one, so two
// periods never overlap.
type Scheduler struct {
	mu       sync.Mutex
	ticker   *time.Ticker
	interval time.Duration
}

// NewScheduler creates a stopped scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start begins ticking at the given interval, replacing any running ticker.
func (s *Scheduler) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	if interval <= 0 {
		return
	}
	s.ticker = time.NewTicker(interval)
	s.interval = interval
}

// Stop halts ticking. It is safe to call on a stopped scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Reconfigure restarts the timer with a new interval.
func (s *Scheduler) Reconfigure(interval time.Duration) {
	s.Start(interval)
}

// Interval returns the active period, or 0 when stopped.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// C returns the channel of the live ticker. A stopped scheduler returns a
// nil channel, which blocks forever in a select.
func (s *Scheduler) C() <-chan time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

func (s *Scheduler) stopLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.interval = 0
}
