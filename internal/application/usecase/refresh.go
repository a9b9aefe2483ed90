package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/tesso57/trendradar/internal/domain/theme"
)

// JobState is the backend's reported fetch job status.
type JobState string

// Fetch job states.
const (
	JobIdle      JobState = "idle"
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

// JobStatus is one poll result from the backend.
type JobStatus struct {
	State    JobState
	NewItems int
}

// FetchGateway abstracts the backend's fetch job endpoints.
type FetchGateway interface {
	TriggerFetch(ctx context.Context) (bool, error)
	FetchStatus(ctx context.Context) (JobStatus, error)
}

// Notification is a single user-facing notice about completed work.
type Notification struct {
	NewItems int
}

// Message renders the notice text.
func (n Notification) Message() string {
	return fmt.Sprintf("fetched %d new themes", n.NewItems)
}

// RefreshService drives one refresh cycle: trigger a fetch job, poll
// its status once, decide whether to notify, and pull the theme list
// into the cache.
//
// Notification is edge-triggered: a notice fires only on the transition
// into completed from idle or running, and only when the job reports
// new items. Re-observing completed, or a completion that brought
// nothing, stays silent.
//
// Each tick carries a monotonic token; a slow tick whose result arrives
// after a newer tick has committed is discarded instead of overwriting
// fresher data.
type RefreshService struct {
	Fetch  FetchGateway
	Themes ThemeService

	mu        sync.Mutex
	lastState JobState
	seq       uint64
	committed uint64
}

// NewRefreshService constructs a RefreshService.
func NewRefreshService(fetch FetchGateway, themes ThemeService) *RefreshService {
	return &RefreshService{Fetch: fetch, Themes: themes, lastState: JobIdle}
}

// Tick runs one scheduled refresh cycle. Trigger and poll failures are
// logged and swallowed so a flaky backend never breaks the loop; only a
// failed theme pull is returned.
func (s *RefreshService) Tick(ctx context.Context) (*Notification, error) {
	token := s.nextToken()

	if _, err := s.Fetch.TriggerFetch(ctx); err != nil {
		log.Printf("[refresh] trigger failed: %v", err)
	}

	notice := s.observe(ctx)

	themes, ageDays, err := s.Themes.Gateway.ListThemes(ctx)
	if err != nil {
		return notice, fmt.Errorf("pull themes: %w", err)
	}
	s.commit(token, themes, ageDays)
	return notice, nil
}

// Pull refreshes the theme list outside the notification cycle. It
// shares the tick ordering guard, so an older in-flight tick cannot
// overwrite its result.
func (s *RefreshService) Pull(ctx context.Context) error {
	token := s.nextToken()
	themes, ageDays, err := s.Themes.Gateway.ListThemes(ctx)
	if err != nil {
		return fmt.Errorf("pull themes: %w", err)
	}
	s.commit(token, themes, ageDays)
	return nil
}

// TriggerNow starts a fetch job on behalf of an explicit user action.
// It reports the outcome of the trigger call itself and never takes
// part in edge-triggered notification.
func (s *RefreshService) TriggerNow(ctx context.Context) error {
	ok, err := s.Fetch.TriggerFetch(ctx)
	if err != nil {
		return fmt.Errorf("trigger fetch: %w", err)
	}
	if !ok {
		return errors.New("backend declined the fetch trigger")
	}
	return nil
}

// LastState returns the most recently observed job state.
func (s *RefreshService) LastState() JobState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastState
}

func (s *RefreshService) observe(ctx context.Context) *Notification {
	status, err := s.Fetch.FetchStatus(ctx)
	if err != nil {
		log.Printf("[refresh] status poll failed: %v", err)
		return nil
	}

	s.mu.Lock()
	prev := s.lastState
	s.lastState = status.State
	s.mu.Unlock()

	edge := status.State == JobCompleted && (prev == JobIdle || prev == JobRunning)
	if edge && status.NewItems > 0 {
		return &Notification{NewItems: status.NewItems}
	}
	return nil
}

func (s *RefreshService) nextToken() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// commit swaps the cache unless a newer tick already landed. The check
// and the swap happen under one lock so overlapping ticks cannot
// interleave between them.
func (s *RefreshService) commit(token uint64, themes []theme.Theme, ageDays int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token <= s.committed {
		return false
	}
	s.committed = token
	s.Themes.Cache.Replace(themes, ageDays)
	return true
}
