package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/readingassistant/digest"
)

// Ensure LoggingAnalyzer implements digest.Analyzer.
var _ digest.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   digest.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next digest.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the result sizes.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, url string) (result *digest.Analysis, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if result != nil {
			attrs = append(attrs,
				"summary", len(result.Summary),
				"keyIdeas", len(result.KeyIdeas),
				"actionItems", len(result.ActionItems),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		a.logger.Info("analyze", attrs...)
	}(time.Now())
	return a.next.Analyze(ctx, url)
}
