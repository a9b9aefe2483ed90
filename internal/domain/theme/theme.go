// Package theme defines core theme models and their lifecycle rules.
package theme

import "time"

// Status is the read lifecycle state of a theme.
type Status string

// Lifecycle states. Deletion is modeled as removal, not a status value.
const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusArchived Status = "archived"
)

// CanTransition reports whether a status change is allowed.
// Transitions are monotonic along new -> read -> archived; nothing
// re-enters new.
func CanTransition(from, to Status) bool {
	switch to {
	case StatusRead:
		return from == StatusNew
	case StatusArchived:
		return from == StatusNew || from == StatusRead
	default:
		return false
	}
}

// Theme is a backend-aggregated content unit.
type Theme struct {
	ID         string
	Title      string
	Summary    string
	Category   string
	Importance float64
	Impact     float64
	CreatedAt  time.Time
	KeyPoints  []string
	Tags       []string
	Status     Status
	ReadAt     time.Time
}

// Article is a single source article attached to a theme detail.
type Article struct {
	ID        string
	Title     string
	URL       string
	Published time.Time
	SourceID  string
	Summary   string
	Author    string
}

// Detail is the full form of a theme, including its articles.
type Detail struct {
	Theme
	Articles []Article
}

// IsUnread reports whether the theme counts as unread.
// Anything that is neither read nor archived is unread.
func (t Theme) IsUnread() bool {
	return t.Status != StatusRead && t.Status != StatusArchived
}
