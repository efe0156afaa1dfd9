package analyze

import (
	"context"
	"net/url"
	"sync"

	"github.com/readingassistant/digest"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of analyses a Batch runs at once.
const DefaultConcurrency = 4

// Batch analyzes many URLs concurrently.
type Batch struct {
	Analyzer    digest.Analyzer
	RateLimiter digest.DomainLimiter
	Concurrency int
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)

// AnalyzeAll analyzes every URL and returns the successful analyses in the
// order of urls. URLs the analyzer rejects are reported as ProgressFailed
// events and left out; they never abort the batch. Only a done context
// stops it early.
func (b *Batch) AnalyzeAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*digest.Analysis, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var mu sync.Mutex
	completed := 0
	report := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if event.Type == ProgressCompleted || event.Type == ProgressFailed {
			completed++
		}
		event.Completed = completed
		event.Total = len(urls)
		progress(event)
	}

	report(ProgressEvent{Type: ProgressStarted})

	results := make([]*digest.Analysis, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, rawURL := range urls {
		g.Go(func() error {
			if err := b.wait(gctx, rawURL); err != nil {
				return err
			}

			a, err := b.Analyzer.Analyze(gctx, rawURL)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				report(ProgressEvent{Type: ProgressFailed, URL: rawURL, Error: err})
				return nil
			}

			results[i] = a
			report(ProgressEvent{Type: ProgressCompleted, URL: rawURL})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report(ProgressEvent{Type: ProgressFinished})

	analyses := make([]*digest.Analysis, 0, len(urls))
	for _, a := range results {
		if a != nil {
			analyses = append(analyses, a)
		}
	}
	return analyses, nil
}

// wait applies the per-host rate limit. URLs without a parsable host skip
// it; the analyzer rejects them.
func (b *Batch) wait(ctx context.Context, rawURL string) error {
	if b.RateLimiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil
	}
	return b.RateLimiter.Wait(ctx, u.Hostname())
}
