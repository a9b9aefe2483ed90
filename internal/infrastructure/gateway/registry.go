package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tesso57/trendradar/internal/domain/configset"
)

type sourceWire struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	Enabled       bool              `json:"enabled"`
	URL           string            `json:"url,omitempty"`
	Username      string            `json:"username,omitempty"`
	Path          string            `json:"path,omitempty"`
	FilePatterns  []string          `json:"file_patterns,omitempty"`
	Recursive     bool              `json:"recursive,omitempty"`
	RetentionDays int               `json:"retention_days"`
	MaxItems      int               `json:"max_items"`
	UseProxy      bool              `json:"use_proxy"`
	Extra         map[string]string `json:"extra,omitempty"`
}

func sourceToWire(s configset.Source) sourceWire {
	w := sourceWire{
		ID:            s.ID,
		Name:          s.Name,
		Type:          string(s.Type),
		Enabled:       s.Enabled,
		RetentionDays: s.RetentionDays,
		MaxItems:      s.MaxItems,
		UseProxy:      s.UseProxy,
		Extra:         s.Extra,
	}
	switch s.Type {
	case configset.SourceRSS:
		w.URL = s.Params.RSS.URL
	case configset.SourceWeb:
		w.URL = s.Params.Web.URL
	case configset.SourceTwitter:
		w.Username = s.Params.Twitter.Username
	case configset.SourceLocal:
		w.Path = s.Params.Local.Path
		w.FilePatterns = s.Params.Local.Patterns
		w.Recursive = s.Params.Local.Recursive
	}
	return w
}

func (w sourceWire) toDomain() configset.Source {
	s := configset.Source{
		ID:            w.ID,
		Name:          w.Name,
		Type:          configset.SourceType(w.Type),
		Enabled:       w.Enabled,
		RetentionDays: w.RetentionDays,
		MaxItems:      w.MaxItems,
		UseProxy:      w.UseProxy,
		Extra:         w.Extra,
	}
	switch s.Type {
	case configset.SourceRSS:
		s.Params.RSS.URL = w.URL
	case configset.SourceWeb:
		s.Params.Web.URL = w.URL
	case configset.SourceTwitter:
		s.Params.Twitter.Username = w.Username
	case configset.SourceLocal:
		s.Params.Local.Path = w.Path
		s.Params.Local.Patterns = w.FilePatterns
		s.Params.Local.Recursive = w.Recursive
	}
	return s
}

type aiServiceWire struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Provider    string  `json:"provider"`
	APIKey      string  `json:"api_key"`
	BaseURL     string  `json:"base_url,omitempty"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description,omitempty"`
}

func aiServiceToWire(s configset.AIService) aiServiceWire {
	return aiServiceWire{
		ID:          s.ID,
		Name:        s.Name,
		Provider:    s.Provider,
		APIKey:      s.APIKey,
		BaseURL:     s.BaseURL,
		Model:       s.Model,
		Temperature: s.Temperature,
		Description: s.Description,
	}
}

func (w aiServiceWire) toDomain() configset.AIService {
	return configset.AIService{
		ID:          w.ID,
		Name:        w.Name,
		Provider:    w.Provider,
		APIKey:      w.APIKey,
		BaseURL:     w.BaseURL,
		Model:       w.Model,
		Temperature: w.Temperature,
		Description: w.Description,
	}
}

type aiConfigWire struct {
	Mode               string `json:"mode"`
	AnalysisService    string `json:"analysis_service,omitempty"`
	AggregationService string `json:"aggregation_service,omitempty"`
}

type groupWire struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Enabled     bool         `json:"enabled"`
	Description string       `json:"description,omitempty"`
	AIConfig    aiConfigWire `json:"ai_config"`
	Sources     []sourceWire `json:"sources"`
}

func groupToWire(g configset.SourceGroup) groupWire {
	w := groupWire{
		ID:          g.ID,
		Name:        g.Name,
		Enabled:     g.Enabled,
		Description: g.Description,
		AIConfig: aiConfigWire{
			Mode:               string(g.AI.Mode),
			AnalysisService:    g.AI.AnalysisService,
			AggregationService: g.AI.AggregationService,
		},
		Sources: make([]sourceWire, 0, len(g.Sources)),
	}
	for _, s := range g.Sources {
		w.Sources = append(w.Sources, sourceToWire(s))
	}
	return w
}

func (w groupWire) toDomain() configset.SourceGroup {
	g := configset.SourceGroup{
		ID:          w.ID,
		Name:        w.Name,
		Enabled:     w.Enabled,
		Description: w.Description,
		AI: configset.AIConfig{
			Mode:               configset.AIMode(w.AIConfig.Mode),
			AnalysisService:    w.AIConfig.AnalysisService,
			AggregationService: w.AIConfig.AggregationService,
		},
		Sources: make([]configset.Source, 0, len(w.Sources)),
	}
	for _, s := range w.Sources {
		g.Sources = append(g.Sources, s.toDomain())
	}
	return g
}

// ListSources returns sources in server order.
func (c *Client) ListSources(ctx context.Context) ([]configset.Source, error) {
	var wires []sourceWire
	if err := c.do(ctx, http.MethodGet, "/api/sources", nil, &wires); err != nil {
		return nil, err
	}
	sources := make([]configset.Source, 0, len(wires))
	for _, w := range wires {
		sources = append(sources, w.toDomain())
	}
	return sources, nil
}

// CreateSource creates a source; the backend may reassign the id.
func (c *Client) CreateSource(ctx context.Context, src configset.Source) (configset.Source, error) {
	var w sourceWire
	if err := c.do(ctx, http.MethodPost, "/api/sources", sourceToWire(src), &w); err != nil {
		return configset.Source{}, err
	}
	return w.toDomain(), nil
}

// UpdateSource updates a source by id.
func (c *Client) UpdateSource(ctx context.Context, id string, src configset.Source) error {
	return c.do(ctx, http.MethodPut, "/api/sources/"+url.PathEscape(id), sourceToWire(src), nil)
}

// DeleteSource deletes a source by id.
func (c *Client) DeleteSource(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/sources/"+url.PathEscape(id), nil, nil)
}

// ListAIServices returns AI services in server order.
func (c *Client) ListAIServices(ctx context.Context) ([]configset.AIService, error) {
	var wires []aiServiceWire
	if err := c.do(ctx, http.MethodGet, "/api/ai-services", nil, &wires); err != nil {
		return nil, err
	}
	services := make([]configset.AIService, 0, len(wires))
	for _, w := range wires {
		services = append(services, w.toDomain())
	}
	return services, nil
}

// CreateAIService creates an AI service.
func (c *Client) CreateAIService(ctx context.Context, svc configset.AIService) (configset.AIService, error) {
	var w aiServiceWire
	if err := c.do(ctx, http.MethodPost, "/api/ai-services", aiServiceToWire(svc), &w); err != nil {
		return configset.AIService{}, err
	}
	return w.toDomain(), nil
}

// UpdateAIService updates an AI service by id.
func (c *Client) UpdateAIService(ctx context.Context, id string, svc configset.AIService) error {
	return c.do(ctx, http.MethodPut, "/api/ai-services/"+url.PathEscape(id), aiServiceToWire(svc), nil)
}

// DeleteAIService deletes an AI service by id.
func (c *Client) DeleteAIService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/ai-services/"+url.PathEscape(id), nil, nil)
}

// ListGroups returns source groups in server order.
func (c *Client) ListGroups(ctx context.Context) ([]configset.SourceGroup, error) {
	var wires []groupWire
	if err := c.do(ctx, http.MethodGet, "/api/source-groups", nil, &wires); err != nil {
		return nil, err
	}
	groups := make([]configset.SourceGroup, 0, len(wires))
	for _, w := range wires {
		groups = append(groups, w.toDomain())
	}
	return groups, nil
}

// CreateGroup creates a source group.
func (c *Client) CreateGroup(ctx context.Context, group configset.SourceGroup) (configset.SourceGroup, error) {
	var w groupWire
	if err := c.do(ctx, http.MethodPost, "/api/source-groups", groupToWire(group), &w); err != nil {
		return configset.SourceGroup{}, err
	}
	return w.toDomain(), nil
}

// UpdateGroup updates a source group by id.
func (c *Client) UpdateGroup(ctx context.Context, id string, group configset.SourceGroup) error {
	return c.do(ctx, http.MethodPut, "/api/source-groups/"+url.PathEscape(id), groupToWire(group), nil)
}

// DeleteGroup deletes a source group by id.
func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/source-groups/"+url.PathEscape(id), nil, nil)
}
