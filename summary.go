package digest

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxSentences is the default summary length.
const DefaultMaxSentences = 5

// Sentence is a summary candidate during one Summarize call.
type Sentence struct {
	Index      int
	Original   string
	Normalized string
	Score      int
}

// NoiseFilter rejects candidates that look like markup, links or code
// rather than prose. The heuristics are lossy by nature.
type NoiseFilter struct {
	// MinLength is the shortest normalized candidate kept, in characters.
	MinLength int
	// MaxLength is the longest normalized candidate kept, in characters.
	MaxLength int
}

// DefaultNoiseFilter returns the default candidate thresholds.
func DefaultNoiseFilter() NoiseFilter {
	return NoiseFilter{MinLength: 20, MaxLength: 1000}
}

var (
	urlRe      = regexp.MustCompile(`\b(?:http|https)://`)
	codeOpenRe = regexp.MustCompile(`\{\s*\w`)
	codeEndRe  = regexp.MustCompile(`;\s*$`)
)

// Reject reports whether a normalized candidate should be discarded.
func (f NoiseFilter) Reject(s string) bool {
	n := charLen(s)
	if n < f.MinLength || n > f.MaxLength {
		return true
	}
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "<") && strings.Contains(lower, ">"):
		return true
	case strings.Contains(lower, "<?xml"), strings.Contains(lower, "</"), strings.Contains(lower, "/>"):
		return true
	case urlRe.MatchString(lower):
		return true
	case codeOpenRe.MatchString(lower), codeEndRe.MatchString(lower):
		return true
	}
	return false
}

// Summarizer selects the highest-scoring sentences of a document and
// returns them in document order.
type Summarizer struct {
	// MaxSentences caps the summary length (K).
	MaxSentences int

	// Keywords each add a bonus when contained in a sentence.
	Keywords []string

	Noise NoiseFilter
}

// NewSummarizer returns a Summarizer with the default K, keywords and noise
// thresholds.
func NewSummarizer() *Summarizer {
	return &Summarizer{
		MaxSentences: DefaultMaxSentences,
		Keywords:     DefaultVocabulary().SummaryKeywords,
		Noise:        DefaultNoiseFilter(),
	}
}

// Summarize scores every candidate sentence and returns the top
// MaxSentences of them, ordered by their position in sentences.
//
// A candidate's score is the sum of its length score, 4 per distinct
// keyword it contains, a lead/conclusion position bonus, and one point per
// verbatim repeat of the same normalized text elsewhere in the document.
// Equal scores prefer the earlier sentence, which keeps the output
// deterministic.
func (s *Summarizer) Summarize(sentences []string) []string {
	summary := make([]string, 0)
	if len(sentences) == 0 || s.MaxSentences <= 0 {
		return summary
	}

	candidates := make([]*Sentence, 0, len(sentences))
	for i, raw := range sentences {
		normalized := normalizeCandidate(raw)
		if s.Noise.Reject(normalized) {
			continue
		}
		candidates = append(candidates, &Sentence{Index: i, Original: raw, Normalized: normalized})
	}
	if len(candidates) == 0 {
		return summary
	}

	freq := make(map[string]int, len(candidates))
	for _, c := range candidates {
		freq[c.Normalized]++
	}

	keywords := foldAll(s.Keywords)
	for _, c := range candidates {
		c.Score = lengthScore(c.Normalized) +
			keywordScore(c.Normalized, keywords) +
			positionScore(c.Index, len(sentences)) +
			freq[c.Normalized] - 1
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Index < candidates[j].Index
	})
	if len(candidates) > s.MaxSentences {
		candidates = candidates[:s.MaxSentences]
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Index < candidates[j].Index
	})
	for _, c := range candidates {
		summary = append(summary, c.Original)
	}
	return summary
}

// normalizeCandidate collapses whitespace and strips dashes and colons from
// both ends.
func normalizeCandidate(s string) string {
	return strings.Trim(collapseSpace(s), "-—: ")
}

// lengthScore favours medium-length sentences without rewarding very long
// ones without bound.
func lengthScore(s string) int {
	n := charLen(s)
	switch {
	case n < 40:
		return 0
	case n < 120:
		return min(6, n/20)
	default:
		return 6 + min(4, (n-120)/50)
	}
}

func keywordScore(s string, keywords []string) int {
	lower := fold(s)
	bonus := 0
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			bonus += 4
		}
	}
	return bonus
}

// positionScore rewards the opening and closing sentences.
func positionScore(index, total int) int {
	if index < 2 {
		return 3
	}
	if index >= total-2 {
		return 2
	}
	return 0
}
