// Package gateway is the typed REST client for the TrendRadar backend.
// It holds no state beyond the base URL and the HTTP client; every
// other component reaches the backend through it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tesso57/trendradar/internal/application/usecase"
	"github.com/tesso57/trendradar/internal/domain/theme"
)

const defaultTimeout = 10 * time.Second

// Client talks JSON over HTTP to one backend instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTP constructs a Client with a caller-supplied http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	c := NewClient(baseURL)
	if httpClient != nil {
		c.http = httpClient
	}
	return c
}

// ListThemes returns the full theme list and the freshness window.
func (c *Client) ListThemes(ctx context.Context) ([]theme.Theme, int, error) {
	var resp themeListResponse
	if err := c.do(ctx, http.MethodGet, "/api/themes", nil, &resp); err != nil {
		return nil, 0, err
	}
	themes := make([]theme.Theme, 0, len(resp.Themes))
	for _, w := range resp.Themes {
		themes = append(themes, w.toDomain())
	}
	return themes, resp.NewThemeAgeDays, nil
}

// ThemeDetail returns one theme with its articles.
func (c *Client) ThemeDetail(ctx context.Context, id string) (*theme.Detail, error) {
	var w themeDetailWire
	if err := c.do(ctx, http.MethodGet, "/api/themes/"+url.PathEscape(id), nil, &w); err != nil {
		return nil, err
	}
	d := w.toDomain()
	return &d, nil
}

// UpdateThemeStatus persists a theme status change.
func (c *Client) UpdateThemeStatus(ctx context.Context, id string, status theme.Status) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPut, "/api/themes/"+url.PathEscape(id)+"/status", body, nil)
}

// DeleteTheme removes a theme from the backend.
func (c *Client) DeleteTheme(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/themes/"+url.PathEscape(id), nil, nil)
}

// TriggerFetch asks the backend to start a fetch job.
func (c *Client) TriggerFetch(ctx context.Context) (bool, error) {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/fetch", nil, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// FetchStatus polls the current fetch job status once.
func (c *Client) FetchStatus(ctx context.Context) (usecase.JobStatus, error) {
	var resp struct {
		Status   string `json:"status"`
		NewItems int    `json:"new_items_count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/fetch/status", nil, &resp); err != nil {
		return usecase.JobStatus{}, err
	}
	return usecase.JobStatus{State: usecase.JobState(resp.Status), NewItems: resp.NewItems}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %s", method, path, backendError(resp))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

// backendError extracts the backend's {error} body when present.
func backendError(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return fmt.Sprintf("%s (%s)", resp.Status, payload.Error)
	}
	return resp.Status
}
