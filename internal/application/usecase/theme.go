// Package usecase contains application-level services.
package usecase

import (
	"context"
	"fmt"

	"github.com/tesso57/trendradar/internal/domain/theme"
)

// ThemeGateway abstracts the backend's theme endpoints.
type ThemeGateway interface {
	ListThemes(ctx context.Context) ([]theme.Theme, int, error)
	ThemeDetail(ctx context.Context, id string) (*theme.Detail, error)
	UpdateThemeStatus(ctx context.Context, id string, status theme.Status) error
	DeleteTheme(ctx context.Context, id string) error
}

// ThemeService keeps the local theme cache consistent with the backend.
// Mutations are optimistic: the cache changes first, then the remote
// call is issued. A remote failure is returned for surfacing but the
// local mutation is not rolled back; the cache converges again on the
// next full refresh.
type ThemeService struct {
	Gateway ThemeGateway
	Cache   *theme.Cache
}

// NewThemeService constructs a ThemeService.
func NewThemeService(gateway ThemeGateway, cache *theme.Cache) ThemeService {
	return ThemeService{Gateway: gateway, Cache: cache}
}

// Refresh pulls the full theme list and swaps the cache.
func (s ThemeService) Refresh(ctx context.Context) error {
	themes, ageDays, err := s.Gateway.ListThemes(ctx)
	if err != nil {
		return fmt.Errorf("refresh themes: %w", err)
	}
	s.Cache.Replace(themes, ageDays)
	return nil
}

// Detail fetches the full theme, articles included. The cache is never
// consulted; detail navigation always goes to the backend.
func (s ThemeService) Detail(ctx context.Context, id string) (*theme.Detail, error) {
	return s.Gateway.ThemeDetail(ctx, id)
}

// MarkRead optimistically marks a theme read, then persists the change.
// Ids absent from the cache still reach the backend.
func (s ThemeService) MarkRead(ctx context.Context, id string) error {
	s.Cache.MarkRead(id)
	if err := s.Gateway.UpdateThemeStatus(ctx, id, theme.StatusRead); err != nil {
		return fmt.Errorf("mark read %s: %w", id, err)
	}
	return nil
}

// Archive optimistically archives a theme, then persists the change.
func (s ThemeService) Archive(ctx context.Context, id string) error {
	s.Cache.Archive(id)
	if err := s.Gateway.UpdateThemeStatus(ctx, id, theme.StatusArchived); err != nil {
		return fmt.Errorf("archive %s: %w", id, err)
	}
	return nil
}

// Delete optimistically drops a theme, then deletes it remotely.
func (s ThemeService) Delete(ctx context.Context, id string) error {
	s.Cache.Delete(id)
	if err := s.Gateway.DeleteTheme(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}
