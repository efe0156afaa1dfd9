package trafilatura

import (
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"
	"github.com/readingassistant/digest"
	"github.com/readingassistant/digest/goquery"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the main content of a page.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var text string
	if result.ContentNode != nil {
		doc := gq.NewDocumentFromNode(result.ContentNode)
		text = goquery.NormalizeText(goquery.ContainerText(doc.Selection))
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = digest.NoTitle
	}

	return &digest.ExtractResult{
		Title: title,
		Text:  text,
	}, nil
}
