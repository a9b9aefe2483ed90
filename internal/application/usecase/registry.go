package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tesso57/trendradar/internal/domain/configset"
)

// SourceGateway abstracts the backend's source endpoints.
type SourceGateway interface {
	ListSources(ctx context.Context) ([]configset.Source, error)
	CreateSource(ctx context.Context, src configset.Source) (configset.Source, error)
	UpdateSource(ctx context.Context, id string, src configset.Source) error
	DeleteSource(ctx context.Context, id string) error
}

// AIServiceGateway abstracts the backend's AI service endpoints.
type AIServiceGateway interface {
	ListAIServices(ctx context.Context) ([]configset.AIService, error)
	CreateAIService(ctx context.Context, svc configset.AIService) (configset.AIService, error)
	UpdateAIService(ctx context.Context, id string, svc configset.AIService) error
	DeleteAIService(ctx context.Context, id string) error
}

// GroupGateway abstracts the backend's source group endpoints.
type GroupGateway interface {
	ListGroups(ctx context.Context) ([]configset.SourceGroup, error)
	CreateGroup(ctx context.Context, group configset.SourceGroup) (configset.SourceGroup, error)
	UpdateGroup(ctx context.Context, id string, group configset.SourceGroup) error
	DeleteGroup(ctx context.Context, id string) error
}

// RemoteConfigGateway abstracts the backend's config resources.
type RemoteConfigGateway interface {
	FilterConfig(ctx context.Context) (configset.FilterConfig, error)
	UpdateFilterConfig(ctx context.Context, cfg configset.FilterConfig) error
	DedupConfig(ctx context.Context) (configset.DedupConfig, error)
	UpdateDedupConfig(ctx context.Context, cfg configset.DedupConfig) error
	GlobalSettings(ctx context.Context) (configset.GlobalSettings, error)
	UpdateGlobalSettings(ctx context.Context, cfg configset.GlobalSettings) error
}

// RegistryGateway bundles every configuration endpoint the registry
// talks to. The REST client implements all of it.
type RegistryGateway interface {
	SourceGateway
	AIServiceGateway
	GroupGateway
	RemoteConfigGateway
}

// RegistryService is the CRUD facade over sources, AI services, and
// source groups. Validation runs locally before any remote call; the
// backend stays authoritative for stored identifiers and for not-found
// on update/delete.
type RegistryService struct {
	Gateway RegistryGateway
	Now     func() time.Time
}

// NewRegistryService constructs a RegistryService.
func NewRegistryService(gateway RegistryGateway, now func() time.Time) RegistryService {
	return RegistryService{Gateway: gateway, Now: now}
}

// ListSources returns sources in server order.
func (s RegistryService) ListSources(ctx context.Context) ([]configset.Source, error) {
	return s.Gateway.ListSources(ctx)
}

// CreateSource validates and creates a source. A blank identifier gets
// a best-effort fallback of type plus timestamp; the backend may still
// reassign it.
func (s RegistryService) CreateSource(ctx context.Context, src configset.Source) (configset.Source, error) {
	if strings.TrimSpace(src.ID) == "" {
		src.ID = fmt.Sprintf("%s_%d", src.Type, s.now().UnixMilli())
	}
	if err := src.Validate(); err != nil {
		return configset.Source{}, err
	}
	return s.Gateway.CreateSource(ctx, src)
}

// UpdateSource validates and updates a source by id.
func (s RegistryService) UpdateSource(ctx context.Context, id string, src configset.Source) error {
	if err := src.Validate(); err != nil {
		return err
	}
	return s.Gateway.UpdateSource(ctx, id, src)
}

// DeleteSource deletes a source. Existence is not re-verified here; an
// unknown id comes back as a backend error.
func (s RegistryService) DeleteSource(ctx context.Context, id string) error {
	return s.Gateway.DeleteSource(ctx, id)
}

// ListAIServices returns AI services in server order.
func (s RegistryService) ListAIServices(ctx context.Context) ([]configset.AIService, error) {
	return s.Gateway.ListAIServices(ctx)
}

// CreateAIService validates and creates an AI service.
func (s RegistryService) CreateAIService(ctx context.Context, svc configset.AIService) (configset.AIService, error) {
	if err := svc.Validate(); err != nil {
		return configset.AIService{}, err
	}
	return s.Gateway.CreateAIService(ctx, svc)
}

// UpdateAIService validates and updates an AI service by id.
func (s RegistryService) UpdateAIService(ctx context.Context, id string, svc configset.AIService) error {
	if err := svc.Validate(); err != nil {
		return err
	}
	return s.Gateway.UpdateAIService(ctx, id, svc)
}

// DeleteAIService deletes an AI service by id.
func (s RegistryService) DeleteAIService(ctx context.Context, id string) error {
	return s.Gateway.DeleteAIService(ctx, id)
}

// ListGroups returns source groups in server order.
func (s RegistryService) ListGroups(ctx context.Context) ([]configset.SourceGroup, error) {
	return s.Gateway.ListGroups(ctx)
}

// CreateGroup validates and creates a source group.
func (s RegistryService) CreateGroup(ctx context.Context, group configset.SourceGroup) (configset.SourceGroup, error) {
	if err := group.Validate(); err != nil {
		return configset.SourceGroup{}, err
	}
	return s.Gateway.CreateGroup(ctx, group)
}

// UpdateGroup validates and updates a source group by id.
func (s RegistryService) UpdateGroup(ctx context.Context, id string, group configset.SourceGroup) error {
	if err := group.Validate(); err != nil {
		return err
	}
	return s.Gateway.UpdateGroup(ctx, id, group)
}

// DeleteGroup deletes a source group by id.
func (s RegistryService) DeleteGroup(ctx context.Context, id string) error {
	return s.Gateway.DeleteGroup(ctx, id)
}

// DedupConfig reads the backend's dedup settings.
func (s RegistryService) DedupConfig(ctx context.Context) (configset.DedupConfig, error) {
	return s.Gateway.DedupConfig(ctx)
}

// UpdateDedupConfig validates and writes the dedup settings.
func (s RegistryService) UpdateDedupConfig(ctx context.Context, cfg configset.DedupConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.Gateway.UpdateDedupConfig(ctx, cfg)
}

// FilterConfig reads the backend's content filter settings.
func (s RegistryService) FilterConfig(ctx context.Context) (configset.FilterConfig, error) {
	return s.Gateway.FilterConfig(ctx)
}

// UpdateFilterConfig writes the content filter settings.
func (s RegistryService) UpdateFilterConfig(ctx context.Context, cfg configset.FilterConfig) error {
	return s.Gateway.UpdateFilterConfig(ctx, cfg)
}

// GlobalSettings reads the backend's global settings.
func (s RegistryService) GlobalSettings(ctx context.Context) (configset.GlobalSettings, error) {
	return s.Gateway.GlobalSettings(ctx)
}

// UpdateGlobalSettings writes the global settings.
func (s RegistryService) UpdateGlobalSettings(ctx context.Context, cfg configset.GlobalSettings) error {
	return s.Gateway.UpdateGlobalSettings(ctx, cfg)
}

func (s RegistryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
