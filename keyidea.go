package digest

import "strings"

// KeyIdeaDetector selects sentences that contain an importance marker such
// as "главная мысль" or "в итоге".
type KeyIdeaDetector struct {
	// Markers are matched as case-insensitive substrings, in order.
	Markers []string
}

// NewKeyIdeaDetector returns a detector using the default markers.
func NewKeyIdeaDetector() *KeyIdeaDetector {
	return &KeyIdeaDetector{Markers: DefaultVocabulary().KeyIdeas}
}

// Extract returns the sentences containing at least one marker, in input
// order. Repeated sentences are all returned.
func (d *KeyIdeaDetector) Extract(sentences []string) []string {
	ideas := make([]string, 0)
	markers := foldAll(d.Markers)
	for _, s := range sentences {
		lower := fold(s)
		for _, m := range markers {
			if strings.Contains(lower, m) {
				ideas = append(ideas, s)
				break
			}
		}
	}
	return ideas
}
