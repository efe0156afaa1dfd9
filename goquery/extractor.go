package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/readingassistant/digest"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor finds the main content of a page by evaluating an ordered
// cascade of rules. The first rule whose container has non-blank text
// wins; its text is flattened by ContainerText.
type Extractor struct {
	Rules []Rule
}

// NewExtractor creates an Extractor with the default cascade.
func NewExtractor() *Extractor {
	return &Extractor{Rules: DefaultRules()}
}

// Extract parses rawHTML and returns its title and cleaned body text.
// A page where no rule matches yields empty text.
func (e *Extractor) Extract(rawHTML string) (*digest.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, digest.Errorf(digest.EINVALID, "failed to parse HTML: %v", err)
	}

	return &digest.ExtractResult{
		Title: Title(doc),
		Text:  NormalizeText(e.mainText(doc)),
	}, nil
}

func (e *Extractor) mainText(doc *goquery.Document) string {
	for _, rule := range e.Rules {
		sel := rule.Match(doc)
		if sel == nil || sel.Length() == 0 {
			continue
		}
		if rule.Fallback || Text(sel) != "" {
			return ContainerText(sel)
		}
	}
	return ""
}

// Title returns the document <title>, then the og:title meta content, then
// digest.NoTitle.
func Title(doc *goquery.Document) string {
	if title := Text(doc.Find("title").First()); title != "" {
		return title
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	return digest.NoTitle
}
