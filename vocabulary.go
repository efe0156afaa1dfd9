package digest

// Vocabulary holds the marker lists that drive the detectors and the
// summary keyword bonus. The lists are data rather than code so they can be
// loaded from a config file and swapped per target language.
type Vocabulary struct {
	// KeyIdeas are phrases that flag a sentence as a key idea.
	KeyIdeas []string `yaml:"keyIdeas" json:"keyIdeas"`

	// Actions are obligation and recommendation words that flag a line as
	// an action item. "stem[class]*" marks a stem that may take endings
	// built from the letters in class.
	Actions []string `yaml:"actions" json:"actions"`

	// SummaryKeywords earn a sentence a bonus in the summary scorer.
	SummaryKeywords []string `yaml:"summaryKeywords" json:"summaryKeywords"`
}

// DefaultVocabulary returns the built-in Russian vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		KeyIdeas:        append([]string(nil), defaultKeyIdeaMarkers...),
		Actions:         append([]string(nil), defaultActionMarkers...),
		SummaryKeywords: append([]string(nil), defaultSummaryKeywords...),
	}
}

// Merge returns v with every empty list replaced by the matching list from
// fallback.
func (v Vocabulary) Merge(fallback Vocabulary) Vocabulary {
	if len(v.KeyIdeas) == 0 {
		v.KeyIdeas = fallback.KeyIdeas
	}
	if len(v.Actions) == 0 {
		v.Actions = fallback.Actions
	}
	if len(v.SummaryKeywords) == 0 {
		v.SummaryKeywords = fallback.SummaryKeywords
	}
	return v
}

var defaultKeyIdeaMarkers = []string{
	"ключевая идея",
	"ключевая мысль",
	"главная идея",
	"главная мысль",
	"основная идея",
	"основная мысль",
	"важная мысль",
	"важный момент",
	"важно",
	"важное замечание",
	"самое главное",
	"главное",
	"суть в том",
	"суть заключается",
	"итог",
	"в итоге",
	"подводя итог",
	"резюмируя",
	"в результате",
	"обобщая",
	"вывод",
	"можно сделать вывод",
	"это означает",
	"это значит",
	"следовательно",
	"таким образом",
	"подытожим",
	"короче говоря",
	"если кратко",
	"в целом",
	"в общем",
	"основной вывод",
	"на самом деле важно",
	"ключевой момент",
}

var defaultActionMarkers = []string{
	"нужно",
	"нужн[а-я]*",
	"следует",
	"следуется",
	"рекомендуется",
	"рекомендуем[ая]*",
	"обязательно",
	"стоит",
	"важно",
	"желательно",
	"требуется",
	"необходимо",
	"советуем",
	"советуется",
	"можно сделать",
	"можно выполнить",
	"полезно",
	"правильно будет",
	"лучше всего",
	"теперь нужно",
	"теперь следует",
	"теперь рекомендуется",
	"теперь необходимо",
}

var defaultSummaryKeywords = []string{
	"важно",
	"ключ",
	"главное",
	"основной",
	"результат",
	"итог",
	"вывод",
	"рекомендуется",
	"нужно",
}
