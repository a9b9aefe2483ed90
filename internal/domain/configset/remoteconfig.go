package configset

import "fmt"

// DuplicateAction decides what happens to a detected duplicate.
type DuplicateAction string

// SimilarityMethod selects how duplicates are detected.
type SimilarityMethod string

// Dedup enum values as the backend reports them.
const (
	ActionKeep    DuplicateAction = "keep"
	ActionDiscard DuplicateAction = "discard"

	MethodTitleOnly SimilarityMethod = "title_only"
	MethodHybrid    SimilarityMethod = "hybrid"
)

// DedupConfig mirrors the backend's deduplication settings resource.
type DedupConfig struct {
	Enabled              bool
	SimilarityThreshold  float64
	CheckWindowDays      int
	MaxHistoryRecords    int
	FilterDeleted        bool
	FilterArchived       bool
	FilterExported       bool
	Action               DuplicateAction
	Method               SimilarityMethod
	HistoryRetentionDays int
}

// Validate checks enum values and the threshold range.
func (c DedupConfig) Validate() error {
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("dedup: similarity threshold %v out of [0,1]", c.SimilarityThreshold)
	}
	if c.Action != ActionKeep && c.Action != ActionDiscard {
		return fmt.Errorf("dedup: unknown duplicate action %q", c.Action)
	}
	if c.Method != MethodTitleOnly && c.Method != MethodHybrid {
		return fmt.Errorf("dedup: unknown similarity method %q", c.Method)
	}
	return nil
}

// FilterConfig mirrors the backend's content filter resource.
type FilterConfig struct {
	Keywords        []string
	ExcludeKeywords []string
	MinImportance   float64
}

// GlobalSettings mirrors the backend's global settings resource.
type GlobalSettings struct {
	Language        string
	TimezoneOffset  int
	NewThemeAgeDays int
}
