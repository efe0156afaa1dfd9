package digest

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// collapseSpace replaces every run of Unicode whitespace with a single space
// and trims the result.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// charLen counts characters rather than bytes so that length thresholds
// behave the same for Cyrillic and Latin text.
func charLen(s string) int {
	return utf8.RuneCountInString(s)
}

// fold prepares text for case-insensitive marker matching. Composing to NFC
// first keeps decomposed letters (и + combining breve) matching their
// precomposed form.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// foldAll folds every marker, dropping blanks and duplicates while keeping
// the order of first occurrence.
func foldAll(markers []string) []string {
	out := make([]string, 0, len(markers))
	seen := make(map[string]bool, len(markers))
	for _, m := range markers {
		m = fold(strings.TrimSpace(m))
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
