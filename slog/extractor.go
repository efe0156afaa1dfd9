package slog

import (
	"log/slog"
	"time"

	"github.com/readingassistant/digest"
)

// Ensure LoggingExtractor implements digest.Extractor.
var _ digest.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   digest.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next digest.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (result *digest.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var chars int
		if result != nil {
			title = result.Title
			chars = len([]rune(result.Text))
		}
		e.logger.Debug("extract",
			"title", title,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
