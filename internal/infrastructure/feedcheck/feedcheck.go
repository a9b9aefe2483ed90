// Package feedcheck verifies source connectivity before a source is
// saved. It fetches and parses the configured endpoint without touching
// the backend.
package feedcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/trendradar/internal/domain/configset"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// Preview summarizes what a source endpoint currently serves.
type Preview struct {
	Title     string
	ItemCount int
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "TrendRadar/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// Check fetches and parses the source's endpoint. Only rss and web
// sources are checkable; other types return an error up front.
func Check(ctx context.Context, src configset.Source) (Preview, error) {
	url := src.URL()
	if url == "" {
		return Preview{}, fmt.Errorf("source %q: type %s has no checkable url", src.ID, src.Type)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return Preview{}, fmt.Errorf("source %q: %w", src.ID, err)
	}
	return Preview{Title: parsed.Title, ItemCount: len(parsed.Items)}, nil
}

// CheckWithTimeout is Check with a deadline.
func CheckWithTimeout(src configset.Source, timeout time.Duration) (Preview, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return Check(ctx, src)
}
