package digest

import (
	"regexp"
	"strings"
)

// ActionItemDetector selects lines that contain an obligation or
// recommendation word such as "нужно" or "рекомендуется".
//
// Unlike the other detectors it works on lines of the raw text, not on
// segmented sentences, so a whole instruction paragraph is kept intact.
type ActionItemDetector struct {
	// Markers are matched case-insensitively as whole words. A marker of the
	// form "stem[class]*" is a stem that may be followed by any run of
	// letters from class, as in "рекомендуем[ая]*". A bare trailing '*'
	// allows any letters.
	Markers []string
}

// NewActionItemDetector returns a detector using the default markers.
func NewActionItemDetector() *ActionItemDetector {
	return &ActionItemDetector{Markers: DefaultVocabulary().Actions}
}

// Extract returns every trimmed, non-blank line of text that contains a
// marker, in order.
func (d *ActionItemDetector) Extract(text string) []string {
	items := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return items
	}

	markers := compileMarkers(d.Markers)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := fold(line)
		for _, m := range markers {
			if m.MatchString(lower) {
				items = append(items, line)
				break
			}
		}
	}
	return items
}

// stemRe recognizes a stem marker such as "нужн[а-я]*": the stem, then the
// letters allowed to follow it.
var stemRe = regexp.MustCompile(`^([^\[\]*]+)\[([\p{L}-]+)\]\*$`)

// compileMarkers turns folded markers into patterns bounded by non-letters
// or the line edges. A stem marker may be followed only by letters from its
// class, and a bare "stem*" by any letters; any other marker must match a
// whole word.
func compileMarkers(markers []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(markers))
	for _, m := range foldAll(markers) {
		var body string
		if sub := stemRe.FindStringSubmatch(m); sub != nil {
			body = regexp.QuoteMeta(sub[1]) + "[" + sub[2] + "]*"
		} else if stem, ok := strings.CutSuffix(m, "*"); ok && stem != "" {
			body = regexp.QuoteMeta(stem) + `\p{L}*`
		} else {
			body = regexp.QuoteMeta(m)
		}
		re, err := regexp.Compile(`(?:^|\P{L})` + body + `(?:\P{L}|$)`)
		if err != nil {
			continue
		}
		out = append(out, re)
	}
	return out
}
