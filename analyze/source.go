// Package analyze wires fetching, extraction and the text heuristics into
// the URL-to-digest pipeline.
package analyze

import (
	"context"
	"log/slog"
	"time"

	"github.com/readingassistant/digest"
)

// Ensure Source implements digest.ArticleSource at compile time.
var _ digest.ArticleSource = (*Source)(nil)

// Source fetches a page and extracts its article content.
//
// Only malformed URLs are reported as errors. A page that cannot be
// fetched or parsed is logged and yields an Article with empty title and
// text, so callers always get a result for a well-formed URL.
type Source struct {
	Fetcher   digest.Fetcher
	Extractor digest.Extractor
	Logger    *slog.Logger

	// RetryDelays are the waits between fetch attempts. Empty means a
	// single attempt.
	RetryDelays []time.Duration
}

// NewSource creates a Source with no retries.
func NewSource(fetcher digest.Fetcher, extractor digest.Extractor, logger *slog.Logger) *Source {
	return &Source{
		Fetcher:   fetcher,
		Extractor: extractor,
		Logger:    logger,
	}
}

// FetchArticle returns the article at url. It returns EINVALID for a blank
// or malformed URL and the context's error if ctx is done.
func (s *Source) FetchArticle(ctx context.Context, url string) (*digest.Article, error) {
	if err := digest.ValidateURL(url); err != nil {
		return nil, err
	}

	html, err := FetchWithRetry(ctx, url, s.Fetcher.Fetch, s.RetryDelays, s.logger())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger().Warn("fetch failed", "url", url, "err", err)
		return &digest.Article{URL: url}, nil
	}

	result, err := s.Extractor.Extract(html)
	if err != nil {
		s.logger().Warn("extract failed", "url", url, "err", err)
		return &digest.Article{URL: url}, nil
	}

	return &digest.Article{
		URL:   url,
		Title: result.Title,
		Text:  result.Text,
	}, nil
}

func (s *Source) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
