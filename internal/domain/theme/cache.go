package theme

import (
	"sync"
	"time"
)

// FilterKind selects a derived view of the cache.
type FilterKind string

// Filter kinds. FilterAll returns the cache unchanged.
const (
	FilterAll      FilterKind = "all"
	FilterUnread   FilterKind = "unread"
	FilterRead     FilterKind = "read"
	FilterArchived FilterKind = "archived"
)

// Stats are the aggregate counters republished on every mutation.
type Stats struct {
	Total  int
	Unread int
}

// Cache is the in-memory mirror of the backend's theme list.
// It holds the last-fetched ordered sequence plus the new-item age
// threshold used to flag freshness. Safe for concurrent use; refresh
// commits and status mutations arrive from separate goroutines.
type Cache struct {
	mu       sync.Mutex
	themes   []Theme
	ageDays  int
	onChange func(Stats)
}

// NewCache constructs an empty cache with a default freshness window.
func NewCache() *Cache {
	return &Cache{ageDays: 3}
}

// Subscribe registers the observer invoked with fresh stats after every
// mutation. Only one observer is supported; later calls replace it.
// The observer runs outside the cache lock.
func (c *Cache) Subscribe(fn func(Stats)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Replace atomically swaps the entire cache contents. Entries absent
// from the new set are dropped, never merged.
func (c *Cache) Replace(themes []Theme, ageDays int) {
	c.mu.Lock()
	c.themes = append(c.themes[:0:0], themes...)
	if ageDays > 0 {
		c.ageDays = ageDays
	}
	notify, stats := c.snapshotLocked()
	c.mu.Unlock()
	publish(notify, stats)
}

// MarkRead flips a cached theme to read. Returns false when the id is
// not cached or the transition is not allowed.
func (c *Cache) MarkRead(id string) bool {
	return c.transition(id, StatusRead)
}

// Archive flips a cached theme to archived. Returns false when the id
// is not cached or the transition is not allowed.
func (c *Cache) Archive(id string) bool {
	return c.transition(id, StatusArchived)
}

// Delete removes a theme from the cache. Reachable from any status.
func (c *Cache) Delete(id string) bool {
	c.mu.Lock()
	for i := range c.themes {
		if c.themes[i].ID == id {
			c.themes = append(c.themes[:i], c.themes[i+1:]...)
			notify, stats := c.snapshotLocked()
			c.mu.Unlock()
			publish(notify, stats)
			return true
		}
	}
	c.mu.Unlock()
	return false
}

// Filter returns a derived view of the cache. It never mutates.
func (c *Cache) Filter(kind FilterKind) []Theme {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Theme, 0, len(c.themes))
	for _, t := range c.themes {
		switch kind {
		case FilterUnread:
			if !t.IsUnread() {
				continue
			}
		case FilterRead:
			if t.Status != StatusRead {
				continue
			}
		case FilterArchived:
			if t.Status != StatusArchived {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Get returns a cached theme by id.
func (c *Cache) Get(id string) (Theme, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range c.themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Stats returns the current aggregate counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statsLocked()
}

// AgeDays returns the freshness window in days.
func (c *Cache) AgeDays() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ageDays
}

// IsFresh reports whether a theme falls inside the freshness window.
func (c *Cache) IsFresh(t Theme, now time.Time) bool {
	if t.CreatedAt.IsZero() {
		return false
	}
	c.mu.Lock()
	ageDays := c.ageDays
	c.mu.Unlock()
	return now.Sub(t.CreatedAt) <= time.Duration(ageDays)*24*time.Hour
}

func (c *Cache) transition(id string, to Status) bool {
	c.mu.Lock()
	for i := range c.themes {
		if c.themes[i].ID != id {
			continue
		}
		if !CanTransition(c.themes[i].Status, to) {
			c.mu.Unlock()
			return false
		}
		c.themes[i].Status = to
		if to == StatusRead {
			c.themes[i].ReadAt = time.Now()
		}
		notify, stats := c.snapshotLocked()
		c.mu.Unlock()
		publish(notify, stats)
		return true
	}
	c.mu.Unlock()
	return false
}

func (c *Cache) statsLocked() Stats {
	s := Stats{Total: len(c.themes)}
	for _, t := range c.themes {
		if t.IsUnread() {
			s.Unread++
		}
	}
	return s
}

// snapshotLocked captures the observer and the post-mutation counters
// so the callback can run after the lock is released.
func (c *Cache) snapshotLocked() (func(Stats), Stats) {
	return c.onChange, c.statsLocked()
}

func publish(fn func(Stats), s Stats) {
	if fn != nil {
		fn(s)
	}
}
