package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/readingassistant/digest"
)

// Ensure Pipeline implements digest.Analyzer at compile time.
var _ digest.Analyzer = (*Pipeline)(nil)

// Pipeline turns a URL into its digest: fetch, segment, then summarize and
// detect key ideas and action items.
type Pipeline struct {
	Source      digest.ArticleSource
	Summarizer  *digest.Summarizer
	KeyIdeas    *digest.KeyIdeaDetector
	ActionItems *digest.ActionItemDetector

	// Now stamps CreatedAt. Defaults to time.Now.
	Now func() time.Time
}

// NewPipeline creates a Pipeline with the default heuristics.
func NewPipeline(source digest.ArticleSource) *Pipeline {
	return &Pipeline{
		Source:      source,
		Summarizer:  digest.NewSummarizer(),
		KeyIdeas:    digest.NewKeyIdeaDetector(),
		ActionItems: digest.NewActionItemDetector(),
	}
}

// WithVocabulary returns a copy of p whose heuristics use v. Empty lists in
// v keep the current markers.
func (p *Pipeline) WithVocabulary(v digest.Vocabulary) *Pipeline {
	cp := *p
	summarizer := *p.Summarizer
	if len(v.SummaryKeywords) > 0 {
		summarizer.Keywords = v.SummaryKeywords
	}
	cp.Summarizer = &summarizer
	if len(v.KeyIdeas) > 0 {
		cp.KeyIdeas = &digest.KeyIdeaDetector{Markers: v.KeyIdeas}
	}
	if len(v.Actions) > 0 {
		cp.ActionItems = &digest.ActionItemDetector{Markers: v.Actions}
	}
	return &cp
}

// Analyze fetches url and derives its digest. Only EINVALID and context
// errors are returned; an unreachable page yields empty fields.
func (p *Pipeline) Analyze(ctx context.Context, url string) (*digest.Analysis, error) {
	article, err := p.Source.FetchArticle(ctx, url)
	if err != nil {
		return nil, err
	}

	sentences := digest.Segment(article.Text)

	a := &digest.Analysis{
		URL:         article.URL,
		Title:       article.Title,
		Text:        article.Text,
		Summary:     p.Summarizer.Summarize(sentences),
		KeyIdeas:    p.KeyIdeas.Extract(sentences),
		ActionItems: p.ActionItems.Extract(article.Text),
		CreatedAt:   p.now().UTC(),
	}
	if article.Text != "" {
		a.ContentHash = computeHash(article.Text)
	}
	return a, nil
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
