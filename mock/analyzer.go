package mock

import (
	"context"

	"github.com/readingassistant/digest"
)

var _ digest.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of digest.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string) (*digest.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, url string) (*digest.Analysis, error) {
	return a.AnalyzeFn(ctx, url)
}
