package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/trendradar/internal/domain/theme"
)

func TestSanitizeTitle_Idempotent(t *testing.T) {
	titles := []string{
		`AI: the "next" wave?`,
		`c:\temp\file|name`,
		"trailing dot.",
		"stacked trailing dots...",
		"dot space mix. .",
		"already clean",
		"mixed <>*? chars.",
	}
	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			once := SanitizeTitle(title)
			twice := SanitizeTitle(once)
			assert.Equal(t, once, twice)
		})
	}

	assert.Equal(t, "report", SanitizeTitle("report.."))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{`AI/ML: what's next?`, "AI ML  what's next.md"},
		{"plain title", "plain title.md"},
		{"ends with dot.", "ends with dot.md"},
		{"ends with dots...", "ends with dots.md"},
		{"", "untitled.md"},
		{`***`, "untitled.md"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.title))
		})
	}
}

func TestDecodeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json list", `["a","b"]`, []string{"a", "b"}},
		{"comma split", "a,b", []string{"a", "b"}},
		{"comma with spaces", " a , b ", []string{"a", "b"}},
		{"single", "solo", []string{"solo"}},
		{"broken json falls back", `["a",`, []string{`["a"`}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeTags(tt.raw))
		})
	}
}

func TestDecodeKeyPoints(t *testing.T) {
	assert.Equal(t, []string{"p1", "p2"}, DecodeKeyPoints(`["p1","p2"]`))
	assert.Nil(t, DecodeKeyPoints("not a list"), "no comma fallback for key points")
	assert.Nil(t, DecodeKeyPoints(`["broken`))
}

func TestProject_TagsFromListAndStringAreIdentical(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	base := theme.Detail{Theme: theme.Theme{
		ID:       "t1",
		Title:    "Chip supply",
		Summary:  "s",
		Category: "Tech News",
	}}

	fromList := base
	fromList.Tags = []string{"a", "b"}
	fromString := base
	fromString.Tags = DecodeTags("a,b")

	assert.Equal(t, Project(fromList, now), Project(fromString, now))
}

func TestProject_Document(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	d := theme.Detail{
		Theme: theme.Theme{
			ID:         "t1",
			Title:      "Chip supply: a new squeeze?",
			Summary:    "Fabs are constrained again.",
			Category:   "Tech News",
			Importance: 8,
			Impact:     6.5,
			KeyPoints:  []string{"capacity down", "prices up"},
			Tags:       []string{"Semi Conductors", "supply"},
		},
		Articles: []theme.Article{
			{Title: "Fab report", URL: "https://example.com/fab"},
			{Title: "Price watch", URL: "https://example.com/price"},
		},
	}

	doc := Project(d, now)

	assert.Equal(t, "Chip supply  a new squeeze.md", doc.Filename)
	assert.True(t, strings.HasPrefix(doc.Content, "---\n"))
	assert.Contains(t, doc.Content, "  - trendradar\n")
	assert.Contains(t, doc.Content, "  - tech-news\n")
	assert.Contains(t, doc.Content, "  - semi-conductors\n")
	assert.Contains(t, doc.Content, "category: Tech News\n")
	assert.Contains(t, doc.Content, "importance: 8\n")
	assert.Contains(t, doc.Content, "impact: 6.5\n")
	assert.Contains(t, doc.Content, "exported: 2026-08-30 09:30\n")
	assert.Contains(t, doc.Content, "# Chip supply: a new squeeze?\n")
	assert.Contains(t, doc.Content, "## Key Points\n\n- capacity down\n- prices up\n")
	assert.Contains(t, doc.Content, "- [Fab report](https://example.com/fab)\n")
}

func TestProject_OmitsEmptyKeyPoints(t *testing.T) {
	doc := Project(theme.Detail{Theme: theme.Theme{Title: "x", Summary: "s"}}, time.Now())
	assert.NotContains(t, doc.Content, "## Key Points")
	assert.Contains(t, doc.Content, "## Sources")
}

func TestExportService_ExportImpliesDelete(t *testing.T) {
	dir := t.TempDir()
	gw := &recordingThemeGateway{detail: &theme.Detail{Theme: theme.Theme{
		ID:      "t1",
		Title:   "Exportable",
		Summary: "s",
	}}}
	cache := theme.NewCache()
	cache.Replace([]theme.Theme{{ID: "t1", Status: theme.StatusNew}}, 3)

	now := func() time.Time { return time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC) }
	svc := NewExportService(gw, cache, dir, now)

	path, err := svc.Export(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Exportable.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Exportable")

	assert.Equal(t, []string{"t1"}, gw.deletes, "export must delete the theme remotely")
	_, ok := cache.Get("t1")
	assert.False(t, ok, "export must drop the theme from the cache")
}

func TestExportService_DeleteFailureStillWritesFile(t *testing.T) {
	dir := t.TempDir()
	gw := &recordingThemeGateway{
		detail:    &theme.Detail{Theme: theme.Theme{ID: "t1", Title: "Kept"}},
		deleteErr: os.ErrPermission,
	}
	svc := NewExportService(gw, theme.NewCache(), dir, nil)

	path, err := svc.Export(context.Background(), "t1")
	assert.Error(t, err)
	assert.FileExists(t, filepath.Join(dir, "Kept.md"))
	assert.Equal(t, filepath.Join(dir, "Kept.md"), path)
}
