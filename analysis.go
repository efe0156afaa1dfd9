package digest

import (
	"context"
	"time"
)

// Analysis is the digest of one article: its text plus the summary, key
// ideas and action items derived from it. List fields are never nil.
type Analysis struct {
	ID          string    `json:"id,omitempty"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Summary     []string  `json:"summary"`
	KeyIdeas    []string  `json:"keyIdeas"`
	ActionItems []string  `json:"actionItems"`
	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "analysis URL required")
	}
	return nil
}

// Analyzer produces the digest of a URL.
type Analyzer interface {
	// Analyze fetches url and derives its digest.
	// Returns EINVALID if url is malformed. An unreachable page is not an
	// error; it yields an Analysis with empty text and empty lists.
	Analyze(ctx context.Context, url string) (*Analysis, error)
}

// AnalysisService represents a service for keeping a history of analyses.
type AnalysisService interface {
	// CreateAnalysis stores a new analysis and assigns its ID.
	CreateAnalysis(ctx context.Context, a *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if the analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis.
	// Returns ENOTFOUND if the analysis does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
