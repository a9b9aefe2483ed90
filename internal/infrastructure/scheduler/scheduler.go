// Package scheduler drives periodic refresh ticks on a fixed interval.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// TickFunc runs one refresh cycle.
type TickFunc func()

// Scheduler wraps a cron runner around a single recurring tick. Start
// and Stop are idempotent; starting while running replaces the existing
// entry. An in-flight tick is never aborted by Stop, so a tick that
// outlives the interval may still land after cancellation.
type Scheduler struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
	running bool
	tick    TickFunc
}

// New constructs a Scheduler for the given tick function.
func New(tick TickFunc) *Scheduler {
	return &Scheduler{tick: tick}
}

// Start begins ticking every interval. A non-positive interval disables
// auto refresh and is reported as an error so callers can surface it.
func (s *Scheduler) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", interval)
	}

	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron = cron.New()
	id, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), s.tick)
	if err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}
	s.entryID = id
	s.cron.Start()
	s.running = true
	return nil
}

// Stop halts the timer. Safe to call when not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.cron.Stop()
	s.cron = nil
	s.running = false
}

// Running reports whether the timer is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextTick returns the next scheduled tick time, zero when stopped.
func (s *Scheduler) NextTick() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}
