package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Rule locates a candidate content container in a parsed page.
type Rule struct {
	// Name identifies the rule in logs and tests.
	Name string

	// Match returns the candidate container, or an empty selection.
	Match func(doc *goquery.Document) *goquery.Selection

	// Fallback rules win even when their container has no text.
	Fallback bool
}

// DefaultRules returns the content cascade in priority order: semantic
// article and main elements first, then containers whose class or id hints
// at article content, then the whole body.
func DefaultRules() []Rule {
	return []Rule{
		TagRule("article"),
		TagRule("main"),
		AttrContainsRule("div", "class", "article"),
		AttrContainsRule("div", "class", "post"),
		AttrContainsRule("div", "id", "article"),
		AttrContainsRule("div", "id", "post"),
		AttrContainsRule("div", "class", "content"),
		AttrContainsRule("section", "class", "content"),
		{
			Name:     "body",
			Match:    func(doc *goquery.Document) *goquery.Selection { return doc.Find("body").First() },
			Fallback: true,
		},
	}
}

// TagRule matches the first element with the given tag name.
func TagRule(tag string) Rule {
	return Rule{
		Name: tag,
		Match: func(doc *goquery.Document) *goquery.Selection {
			return doc.Find(tag).First()
		},
	}
}

// AttrContainsRule matches the first tag element whose attr value contains
// substr, ignoring case.
func AttrContainsRule(tag, attr, substr string) Rule {
	substr = strings.ToLower(substr)
	return Rule{
		Name: tag + "[" + attr + "*=" + substr + "]",
		Match: func(doc *goquery.Document) *goquery.Selection {
			return doc.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
				v, ok := s.Attr(attr)
				return ok && strings.Contains(strings.ToLower(v), substr)
			}).First()
		},
	}
}
