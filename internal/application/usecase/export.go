package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tesso57/trendradar/internal/domain/theme"
)

// Document is a projected theme ready to be written to disk.
type Document struct {
	Filename string
	Content  string
}

// SanitizeTitle strips characters illegal in common filesystems,
// replacing them with spaces, and drops all trailing dots and spaces.
// Idempotent: sanitizing a sanitized title is a no-op.
func SanitizeTitle(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return ' '
		}
		return r
	}, title)
	sanitized = strings.TrimSpace(sanitized)
	return strings.TrimRight(sanitized, ". ")
}

// SanitizeFilename turns a theme title into a safe markdown filename.
func SanitizeFilename(title string) string {
	sanitized := SanitizeTitle(title)
	if sanitized == "" {
		sanitized = "untitled"
	}
	return sanitized + ".md"
}

// DecodeTags accepts a serialized tag list: a JSON array first, then a
// comma-separated string as fallback.
func DecodeTags(raw string) []string {
	if list, ok := decodeJSONList(raw); ok {
		return list
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// DecodeKeyPoints accepts a serialized key-point list: a JSON array, or
// nothing. There is no comma fallback; key points may contain commas.
func DecodeKeyPoints(raw string) []string {
	if list, ok := decodeJSONList(raw); ok {
		return list
	}
	return nil
}

func decodeJSONList(raw string) ([]string, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "[") {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, false
	}
	return list, true
}

func normalizeTag(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), " ", "-")
}

// Project transforms a theme into a portable markdown document. Pure;
// it never touches the cache or the network.
func Project(d theme.Detail, exportedAt time.Time) Document {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString("tags:\n")
	b.WriteString("  - trendradar\n")
	if d.Category != "" {
		fmt.Fprintf(&b, "  - %s\n", normalizeTag(d.Category))
	}
	for _, tag := range d.Tags {
		if tag = normalizeTag(tag); tag != "" {
			fmt.Fprintf(&b, "  - %s\n", tag)
		}
	}
	fmt.Fprintf(&b, "category: %s\n", d.Category)
	fmt.Fprintf(&b, "importance: %g\n", d.Importance)
	fmt.Fprintf(&b, "impact: %g\n", d.Impact)
	fmt.Fprintf(&b, "exported: %s\n", exportedAt.Format("2006-01-02 15:04"))
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", d.Title)

	b.WriteString("## Summary\n\n")
	b.WriteString(d.Summary)
	b.WriteString("\n")

	if len(d.KeyPoints) > 0 {
		b.WriteString("\n## Key Points\n\n")
		for _, p := range d.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	b.WriteString("\n## Sources\n\n")
	for _, a := range d.Articles {
		fmt.Fprintf(&b, "- [%s](%s)\n", a.Title, a.URL)
	}

	return Document{
		Filename: SanitizeFilename(d.Title),
		Content:  b.String(),
	}
}

// ExportService projects themes to markdown files. Export implies
// delete: a successfully written theme is removed from the backend and
// the local cache.
type ExportService struct {
	Gateway ThemeGateway
	Cache   *theme.Cache
	Dir     string
	Now     func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(gateway ThemeGateway, cache *theme.Cache, dir string, now func() time.Time) ExportService {
	return ExportService{Gateway: gateway, Cache: cache, Dir: dir, Now: now}
}

// Export fetches the theme detail, writes the projected document under
// the export directory, and deletes the theme. Returns the written path.
func (s ExportService) Export(ctx context.Context, id string) (string, error) {
	detail, err := s.Gateway.ThemeDetail(ctx, id)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", id, err)
	}
	if detail == nil {
		return "", fmt.Errorf("export %s: theme not found", id)
	}

	doc := Project(*detail, s.now())
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("export %s: %w", id, err)
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
		return "", fmt.Errorf("export %s: %w", id, err)
	}

	if s.Cache != nil {
		s.Cache.Delete(id)
	}
	if err := s.Gateway.DeleteTheme(ctx, id); err != nil {
		return path, fmt.Errorf("exported to %s but delete failed: %w", path, err)
	}
	return path, nil
}

func (s ExportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
