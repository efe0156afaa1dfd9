package analyze

import (
	"context"
	"log/slog"

	"github.com/readingassistant/digest"
)

// Ensure Recorder implements digest.Analyzer at compile time.
var _ digest.Analyzer = (*Recorder)(nil)

// Recorder saves every analysis produced by the wrapped Analyzer to the
// history. A failed save is logged and the analysis is still returned.
type Recorder struct {
	Analyzer digest.Analyzer
	Analyses digest.AnalysisService
	Logger   *slog.Logger
}

// NewRecorder creates a Recorder.
func NewRecorder(analyzer digest.Analyzer, analyses digest.AnalysisService, logger *slog.Logger) *Recorder {
	return &Recorder{Analyzer: analyzer, Analyses: analyses, Logger: logger}
}

// Analyze delegates to the wrapped analyzer and stores the result.
func (r *Recorder) Analyze(ctx context.Context, url string) (*digest.Analysis, error) {
	a, err := r.Analyzer.Analyze(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := r.Analyses.CreateAnalysis(ctx, a); err != nil {
		logger := r.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("save failed", "url", url, "err", err)
	}
	return a, nil
}
