package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/trendradar/internal/application/usecase"
	"github.com/tesso57/trendradar/internal/domain/configset"
	"github.com/tesso57/trendradar/internal/domain/theme"
)

func TestClient_ListThemes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/themes", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"themes": [
				{"id": "t1", "title": "One", "status": "new", "tags": ["ai", "chips"], "key_points": ["p1"]},
				{"id": "t2", "title": "Two", "status": "read", "tags": "a,b", "key_points": "[\"k1\",\"k2\"]"}
			],
			"new_theme_age_days": 5,
			"date": "2026-08-30"
		}`))
	}))
	defer srv.Close()

	themes, ageDays, err := NewClient(srv.URL).ListThemes(context.Background())
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, 5, ageDays)

	assert.Equal(t, []string{"ai", "chips"}, themes[0].Tags)
	assert.Equal(t, []string{"p1"}, themes[0].KeyPoints)
	assert.Equal(t, theme.StatusNew, themes[0].Status)

	// String-serialized lists decode the same as literal lists.
	assert.Equal(t, []string{"a", "b"}, themes[1].Tags)
	assert.Equal(t, []string{"k1", "k2"}, themes[1].KeyPoints)
}

func TestClient_UpdateThemeStatus(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).UpdateThemeStatus(context.Background(), "t1", theme.StatusArchived)
	require.NoError(t, err)
	assert.Equal(t, "/api/themes/t1/status", gotPath)
	assert.Equal(t, map[string]string{"status": "archived"}, gotBody)
}

func TestClient_BackendErrorBodySurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "theme not found"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).DeleteTheme(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme not found")
	assert.Contains(t, err.Error(), "404")
}

func TestClient_FetchEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/fetch":
			require.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(`{"success": true}`))
		case "/api/fetch/status":
			_, _ = w.Write([]byte(`{"status": "completed", "new_items_count": 4}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	ok, err := c.TriggerFetch(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	status, err := c.FetchStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.JobCompleted, status.State)
	assert.Equal(t, 4, status.NewItems)
}

func TestClient_SourceRoundTrip(t *testing.T) {
	var created sourceWire
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/sources":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			_ = json.NewEncoder(w).Encode(created)
		case r.Method == http.MethodGet && r.URL.Path == "/api/sources":
			_ = json.NewEncoder(w).Encode([]sourceWire{created})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	src := configset.Source{
		ID:      "local-notes",
		Name:    "Notes",
		Type:    configset.SourceLocal,
		Enabled: true,
		Params: configset.SourceParams{Local: configset.LocalParams{
			Path:      "/notes",
			Patterns:  []string{"*.md", "*.txt"},
			Recursive: true,
		}},
		RetentionDays: 30,
		MaxItems:      50,
	}

	got, err := c.CreateSource(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, src, got)

	listed, err := c.ListSources(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, src, listed[0])
}

func TestClient_GroupRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/source-groups", r.URL.Path)
		var wire groupWire
		require.NoError(t, json.NewDecoder(r.Body).Decode(&wire))
		_ = json.NewEncoder(w).Encode(wire)
	}))
	defer srv.Close()

	group := configset.SourceGroup{
		ID:      "tech",
		Name:    "Tech",
		Enabled: true,
		AI: configset.AIConfig{
			Mode:            configset.ModeSingle,
			AnalysisService: "openai-main",
		},
		Sources: []configset.Source{
			{ID: "hn", Type: configset.SourceRSS, Params: configset.SourceParams{RSS: configset.RSSParams{URL: "https://hn/rss"}}},
		},
	}

	got, err := NewClient(srv.URL).CreateGroup(context.Background(), group)
	require.NoError(t, err)
	assert.Equal(t, group, got)
}

func TestClient_DedupConfigRoundTrip(t *testing.T) {
	want := configset.DedupConfig{
		Enabled:              true,
		SimilarityThreshold:  0.85,
		CheckWindowDays:      7,
		MaxHistoryRecords:    1000,
		FilterDeleted:        true,
		FilterExported:       true,
		Action:               configset.ActionDiscard,
		Method:               configset.MethodHybrid,
		HistoryRetentionDays: 90,
	}

	var stored dedupConfigWire
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/config/dedup", r.URL.Path)
		if r.Method == http.MethodPut {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&stored))
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(stored)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.UpdateDedupConfig(context.Background(), want))

	got, err := c.DedupConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
