package gateway

import (
	"encoding/json"
	"time"

	"github.com/tesso57/trendradar/internal/application/usecase"
	"github.com/tesso57/trendradar/internal/domain/theme"
)

// tagList tolerates both a JSON array and a serialized list string,
// falling back to comma-split parsing.
type tagList []string

func (l *tagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = usecase.DecodeTags(raw)
	return nil
}

// pointList tolerates both a JSON array and a serialized list string,
// falling back to an empty list when the string does not decode.
type pointList []string

func (l *pointList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = usecase.DecodeKeyPoints(raw)
	return nil
}

type themeWire struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Category   string    `json:"category"`
	Importance float64   `json:"importance"`
	Impact     float64   `json:"impact"`
	CreatedAt  time.Time `json:"created_at"`
	KeyPoints  pointList `json:"key_points"`
	Tags       tagList   `json:"tags"`
	Status     string    `json:"status"`
	ReadAt     time.Time `json:"read_at,omitempty"`
}

type themeListResponse struct {
	Themes          []themeWire `json:"themes"`
	NewThemeAgeDays int         `json:"new_theme_age_days"`
	Date            string      `json:"date"`
}

type articleWire struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Published time.Time `json:"published"`
	SourceID  string    `json:"source_id"`
	Summary   string    `json:"summary"`
	Author    string    `json:"author"`
}

type themeDetailWire struct {
	themeWire
	Articles []articleWire `json:"articles"`
}

func (w themeWire) toDomain() theme.Theme {
	status := theme.Status(w.Status)
	if status == "" {
		status = theme.StatusNew
	}
	return theme.Theme{
		ID:         w.ID,
		Title:      w.Title,
		Summary:    w.Summary,
		Category:   w.Category,
		Importance: w.Importance,
		Impact:     w.Impact,
		CreatedAt:  w.CreatedAt,
		KeyPoints:  w.KeyPoints,
		Tags:       w.Tags,
		Status:     status,
		ReadAt:     w.ReadAt,
	}
}

func (w themeDetailWire) toDomain() theme.Detail {
	d := theme.Detail{Theme: w.themeWire.toDomain()}
	d.Articles = make([]theme.Article, 0, len(w.Articles))
	for _, a := range w.Articles {
		d.Articles = append(d.Articles, theme.Article{
			ID:        a.ID,
			Title:     a.Title,
			URL:       a.URL,
			Published: a.Published,
			SourceID:  a.SourceID,
			Summary:   a.Summary,
			Author:    a.Author,
		})
	}
	return d
}
