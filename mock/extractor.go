package mock

import "github.com/readingassistant/digest"

var _ digest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of digest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*digest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*digest.ExtractResult, error) {
	return e.ExtractFn(html)
}
