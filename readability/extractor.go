package readability

import (
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/readingassistant/digest"
	"github.com/readingassistant/digest/goquery"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main content of a page.
// The isolated content is flattened the same way as the selector cascade.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and cleaned text.
func (e *Extractor) Extract(rawHTML string) (*digest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, digest.Errorf(digest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	doc, err := gq.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = digest.NoTitle
	}

	return &digest.ExtractResult{
		Title: title,
		Text:  goquery.NormalizeText(goquery.ContainerText(doc.Find("body"))),
	}, nil
}
