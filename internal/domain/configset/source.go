// Package configset defines the relational configuration model: sources,
// AI services, and source groups, with the integrity rules enforced
// client-side before any remote write.
package configset

import (
	"fmt"
	"strings"
)

// SourceType discriminates source connection parameters.
type SourceType string

// Supported ingestion source types.
const (
	SourceRSS     SourceType = "rss"
	SourceWeb     SourceType = "web"
	SourceTwitter SourceType = "twitter"
	SourceLocal   SourceType = "local"
)

// RSSParams are the connection parameters for rss sources.
type RSSParams struct {
	URL string
}

// WebParams are the connection parameters for web sources.
type WebParams struct {
	URL string
}

// TwitterParams are the connection parameters for twitter sources.
type TwitterParams struct {
	Username string
}

// LocalParams are the connection parameters for local folder sources.
type LocalParams struct {
	Path      string
	Patterns  []string
	Recursive bool
}

// SourceParams is the per-type parameter variant. Exactly the field
// matching the source type is consulted; the rest stay zero.
type SourceParams struct {
	RSS     RSSParams
	Web     WebParams
	Twitter TwitterParams
	Local   LocalParams
}

// Source is a configured ingestion endpoint.
type Source struct {
	ID            string
	Name          string
	Type          SourceType
	Enabled       bool
	Params        SourceParams
	RetentionDays int
	MaxItems      int
	UseProxy      bool
	Extra         map[string]string
}

// Validate checks the identifier and the type-required parameter subset.
// It runs before any remote call; a failure names the offending field.
func (s Source) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("source id is empty")
	}
	switch s.Type {
	case SourceRSS:
		if strings.TrimSpace(s.Params.RSS.URL) == "" {
			return fmt.Errorf("rss source %q: url is required", s.ID)
		}
	case SourceWeb:
		if strings.TrimSpace(s.Params.Web.URL) == "" {
			return fmt.Errorf("web source %q: url is required", s.ID)
		}
	case SourceTwitter:
		if strings.TrimSpace(s.Params.Twitter.Username) == "" {
			return fmt.Errorf("twitter source %q: username is required", s.ID)
		}
	case SourceLocal:
		if strings.TrimSpace(s.Params.Local.Path) == "" {
			return fmt.Errorf("local source %q: path is required", s.ID)
		}
	default:
		return fmt.Errorf("source %q: unknown type %q", s.ID, s.Type)
	}
	return nil
}

// URL returns the fetchable URL for rss/web sources, empty otherwise.
func (s Source) URL() string {
	switch s.Type {
	case SourceRSS:
		return s.Params.RSS.URL
	case SourceWeb:
		return s.Params.Web.URL
	}
	return ""
}
