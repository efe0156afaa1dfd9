package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MinFragmentLength is the shortest paragraph-level fragment kept by
// ContainerText, exclusive, in characters.
const MinFragmentLength = 20

// fragmentSelector lists the paragraph-level elements collected from a
// container.
const fragmentSelector = "p, h1, h2, h3, li"

// ContainerText returns the readable text of a content container.
//
// Paragraphs, top-level headings and list items are collected in document
// order, each whitespace-normalized, and those longer than
// MinFragmentLength characters are joined with blank lines. A container
// without any such fragment yields its whole flattened text instead.
func ContainerText(sel *goquery.Selection) string {
	var fragments []string
	sel.Find(fragmentSelector).Each(func(_ int, s *goquery.Selection) {
		text := Text(s)
		if utf8.RuneCountInString(text) > MinFragmentLength {
			fragments = append(fragments, text)
		}
	})
	if len(fragments) > 0 {
		return strings.Join(fragments, "\n\n")
	}
	return Text(sel)
}

var newlineRunRe = regexp.MustCompile(`\n{3,}`)

// NormalizeText unifies line endings, collapses three or more consecutive
// newlines to a blank line and trims the result.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Text returns the visible text of the selection with whitespace runs
// collapsed to single spaces. Block elements separate words, and script and
// style contents are skipped.
func Text(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(&sb, n)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func writeText(sb *strings.Builder, n *html.Node) {
	block := false
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template, atom.Noscript:
			return
		}
		block = blockElements[n.DataAtom]
	}

	if block {
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteByte(' ')
	}
}

var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Table: true, atom.Td: true, atom.Th: true, atom.Tr: true,
	atom.Ul: true,
}
