package configset

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateIdentifier checks the shared identifier charset rule used by
// AI services and source groups: lowercase alphanumeric plus hyphen.
func ValidateIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("identifier is empty")
	}
	if !identifierPattern.MatchString(id) {
		return fmt.Errorf("identifier %q must match [a-z0-9-]+", id)
	}
	return nil
}

// AIService is a reusable model endpoint definition.
type AIService struct {
	ID          string
	Name        string
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Description string
}

// Validate checks identifier and temperature range.
func (s AIService) Validate() error {
	if err := ValidateIdentifier(s.ID); err != nil {
		return fmt.Errorf("ai service: %w", err)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("ai service %q: name is required", s.ID)
	}
	if s.Temperature < 0 || s.Temperature > 1 {
		return fmt.Errorf("ai service %q: temperature %v out of [0,1]", s.ID, s.Temperature)
	}
	return nil
}
