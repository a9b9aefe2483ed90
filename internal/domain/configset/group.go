package configset

import "fmt"

// AIMode selects how a group's sources are processed.
type AIMode string

// Processing modes. Single-stage uses only the analysis service.
const (
	ModeTwoStage AIMode = "two-stage"
	ModeSingle   AIMode = "single"
)

// AIConfig binds a group to its processing services. Service references
// are identifiers that should resolve against the AI service set, but an
// unresolved reference is not an error; editors surface it as an empty
// choice.
type AIConfig struct {
	Mode               AIMode
	AnalysisService    string
	AggregationService string
}

// SourceGroup binds a set of sources to an AI processing configuration.
// Sources are held by value copy, never by live reference.
type SourceGroup struct {
	ID          string
	Name        string
	Enabled     bool
	Description string
	AI          AIConfig
	Sources     []Source
}

// Validate checks the group identifier and mode.
func (g SourceGroup) Validate() error {
	if err := ValidateIdentifier(g.ID); err != nil {
		return fmt.Errorf("source group: %w", err)
	}
	if g.AI.Mode != ModeTwoStage && g.AI.Mode != ModeSingle {
		return fmt.Errorf("source group %q: unknown mode %q", g.ID, g.AI.Mode)
	}
	return nil
}

// HasSource reports whether a source id already appears in the group.
func (g *SourceGroup) HasSource(id string) bool {
	for _, s := range g.Sources {
		if s.ID == id {
			return true
		}
	}
	return false
}

// AddSource appends a value copy of the source. A source may appear in
// a group at most once; duplicates by id are rejected.
func (g *SourceGroup) AddSource(src Source) error {
	if g.HasSource(src.ID) {
		return fmt.Errorf("source %q is already in group %q", src.ID, g.ID)
	}
	g.Sources = append(g.Sources, src)
	return nil
}

// RemoveSource drops a source by id. Returns false if absent.
func (g *SourceGroup) RemoveSource(id string) bool {
	for i, s := range g.Sources {
		if s.ID == id {
			g.Sources = append(g.Sources[:i], g.Sources[i+1:]...)
			return true
		}
	}
	return false
}

// SetMode switches the processing mode. Switching to single clears the
// aggregation-service reference so a stale two-stage artifact is never
// presented; the analysis-service reference is kept.
func (g *SourceGroup) SetMode(mode AIMode) {
	g.AI.Mode = mode
	if mode == ModeSingle {
		g.AI.AggregationService = ""
	}
}
