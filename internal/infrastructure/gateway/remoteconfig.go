package gateway

import (
	"context"
	"net/http"

	"github.com/tesso57/trendradar/internal/domain/configset"
)

type filterConfigWire struct {
	Keywords        []string `json:"keywords"`
	ExcludeKeywords []string `json:"exclude_keywords"`
	MinImportance   float64  `json:"min_importance"`
}

type dedupConfigWire struct {
	Enabled              bool    `json:"enabled"`
	SimilarityThreshold  float64 `json:"similarity_threshold"`
	CheckWindowDays      int     `json:"check_window_days"`
	MaxHistoryRecords    int     `json:"max_history_records"`
	FilterDeleted        bool    `json:"filter_deleted"`
	FilterArchived       bool    `json:"filter_archived"`
	FilterExported       bool    `json:"filter_exported"`
	DuplicateAction      string  `json:"duplicate_action"`
	SimilarityMethod     string  `json:"similarity_method"`
	HistoryRetentionDays int     `json:"history_retention_days"`
}

type globalSettingsWire struct {
	Language        string `json:"language"`
	TimezoneOffset  int    `json:"timezone_offset"`
	NewThemeAgeDays int    `json:"new_theme_age_days"`
}

// FilterConfig reads the backend's content filter settings.
func (c *Client) FilterConfig(ctx context.Context) (configset.FilterConfig, error) {
	var w filterConfigWire
	if err := c.do(ctx, http.MethodGet, "/api/config/filter", nil, &w); err != nil {
		return configset.FilterConfig{}, err
	}
	return configset.FilterConfig{
		Keywords:        w.Keywords,
		ExcludeKeywords: w.ExcludeKeywords,
		MinImportance:   w.MinImportance,
	}, nil
}

// UpdateFilterConfig writes the content filter settings.
func (c *Client) UpdateFilterConfig(ctx context.Context, cfg configset.FilterConfig) error {
	w := filterConfigWire{
		Keywords:        cfg.Keywords,
		ExcludeKeywords: cfg.ExcludeKeywords,
		MinImportance:   cfg.MinImportance,
	}
	return c.do(ctx, http.MethodPut, "/api/config/filter", w, nil)
}

// DedupConfig reads the backend's deduplication settings.
func (c *Client) DedupConfig(ctx context.Context) (configset.DedupConfig, error) {
	var w dedupConfigWire
	if err := c.do(ctx, http.MethodGet, "/api/config/dedup", nil, &w); err != nil {
		return configset.DedupConfig{}, err
	}
	return configset.DedupConfig{
		Enabled:              w.Enabled,
		SimilarityThreshold:  w.SimilarityThreshold,
		CheckWindowDays:      w.CheckWindowDays,
		MaxHistoryRecords:    w.MaxHistoryRecords,
		FilterDeleted:        w.FilterDeleted,
		FilterArchived:       w.FilterArchived,
		FilterExported:       w.FilterExported,
		Action:               configset.DuplicateAction(w.DuplicateAction),
		Method:               configset.SimilarityMethod(w.SimilarityMethod),
		HistoryRetentionDays: w.HistoryRetentionDays,
	}, nil
}

// UpdateDedupConfig writes the deduplication settings.
func (c *Client) UpdateDedupConfig(ctx context.Context, cfg configset.DedupConfig) error {
	w := dedupConfigWire{
		Enabled:              cfg.Enabled,
		SimilarityThreshold:  cfg.SimilarityThreshold,
		CheckWindowDays:      cfg.CheckWindowDays,
		MaxHistoryRecords:    cfg.MaxHistoryRecords,
		FilterDeleted:        cfg.FilterDeleted,
		FilterArchived:       cfg.FilterArchived,
		FilterExported:       cfg.FilterExported,
		DuplicateAction:      string(cfg.Action),
		SimilarityMethod:     string(cfg.Method),
		HistoryRetentionDays: cfg.HistoryRetentionDays,
	}
	return c.do(ctx, http.MethodPut, "/api/config/dedup", w, nil)
}

// GlobalSettings reads the backend's global settings.
func (c *Client) GlobalSettings(ctx context.Context) (configset.GlobalSettings, error) {
	var w globalSettingsWire
	if err := c.do(ctx, http.MethodGet, "/api/config/settings", nil, &w); err != nil {
		return configset.GlobalSettings{}, err
	}
	return configset.GlobalSettings{
		Language:        w.Language,
		TimezoneOffset:  w.TimezoneOffset,
		NewThemeAgeDays: w.NewThemeAgeDays,
	}, nil
}

// UpdateGlobalSettings writes the global settings.
func (c *Client) UpdateGlobalSettings(ctx context.Context, cfg configset.GlobalSettings) error {
	w := globalSettingsWire{
		Language:        cfg.Language,
		TimezoneOffset:  cfg.TimezoneOffset,
		NewThemeAgeDays: cfg.NewThemeAgeDays,
	}
	return c.do(ctx, http.MethodPut, "/api/config/settings", w, nil)
}
