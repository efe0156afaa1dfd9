package digest

import "strings"

// Sentence filter thresholds.
const (
	MinSentenceLength = 30
	MinSentenceTokens = 3
)

// Segment splits text into sentence-like units in document order.
//
// Whitespace runs (including newlines) collapse to single spaces, then the
// text is cut after '.', '!' or '?' wherever whitespace follows. Fragments
// shorter than MinSentenceLength characters or with fewer than
// MinSentenceTokens words are dropped; they are headers, bullets and
// navigation leftovers rather than prose.
func Segment(text string) []string {
	sentences := make([]string, 0)

	normalized := collapseSpace(text)
	if normalized == "" {
		return sentences
	}

	for _, s := range splitSentences(normalized) {
		if charLen(s) >= MinSentenceLength && len(strings.Fields(s)) >= MinSentenceTokens {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// splitSentences cuts single-spaced text after terminal punctuation that is
// followed by a space. Empty fragments are dropped.
func splitSentences(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s)-1; i++ {
		switch s[i] {
		case '.', '!', '?':
			if s[i+1] == ' ' {
				if part := strings.TrimSpace(s[start : i+1]); part != "" {
					parts = append(parts, part)
				}
				start = i + 2
			}
		}
	}
	if part := strings.TrimSpace(s[start:]); part != "" {
		parts = append(parts, part)
	}
	return parts
}
