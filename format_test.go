package digest_test

import (
	"strings"
	"testing"

	"github.com/readingassistant/digest"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlainText(t *testing.T) {
	t.Parallel()

	t.Run("renders every section", func(t *testing.T) {
		t.Parallel()

		a := &digest.Analysis{
			URL:         "https://example.com/a",
			Title:       "Статья",
			Text:        "Полный текст.",
			Summary:     []string{"Первое.", "Второе."},
			KeyIdeas:    []string{"Идея."},
			ActionItems: []string{"Сделать."},
		}

		got := digest.FormatPlainText(a)

		expected := "Статья\n" +
			"URL: https://example.com/a\n\n" +
			"---- Summary ----\n• Первое.\n• Второе.\n\n" +
			"---- Key ideas ----\n1. Идея.\n\n" +
			"---- Action items ----\n[ ] Сделать.\n\n" +
			"---- Full text (snippet) ----\nПолный текст.\n"
		assert.Equal(t, expected, got)
	})

	t.Run("renders placeholders for empty analysis", func(t *testing.T) {
		t.Parallel()

		a := &digest.Analysis{URL: "https://unreachable.invalid"}

		got := digest.FormatPlainText(a)

		expected := "No title\n" +
			"URL: https://unreachable.invalid\n\n" +
			"---- Summary ----\n(no summary)\n\n" +
			"---- Key ideas ----\n(none)\n\n" +
			"---- Action items ----\n(none)\n\n" +
			"---- Full text (snippet) ----\n(no text)\n"
		assert.Equal(t, expected, got)
	})

	t.Run("truncates long text", func(t *testing.T) {
		t.Parallel()

		a := &digest.Analysis{Title: "T", Text: strings.Repeat("я", digest.SnippetLength+10)}

		got := digest.FormatPlainText(a)

		assert.True(t, strings.HasSuffix(got, strings.Repeat("я", digest.SnippetLength)+"...\n"))
		assert.NotContains(t, got, strings.Repeat("я", digest.SnippetLength+1))
	})
}

func TestFormatMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("renders non-empty sections", func(t *testing.T) {
		t.Parallel()

		a := &digest.Analysis{
			Title:       "Статья",
			Summary:     []string{"Первое."},
			KeyIdeas:    []string{"Идея один.", "Идея два."},
			ActionItems: []string{"Сделать."},
		}

		got := digest.FormatMarkdown(a)

		expected := "*Статья*\n\n" +
			"*Summary:*\n- Первое.\n\n" +
			"*Key Ideas:*\n1. Идея один.\n2. Идея два.\n\n" +
			"*Action Items:*\n- [ ] Сделать."
		assert.Equal(t, expected, got)
	})

	t.Run("omits empty sections", func(t *testing.T) {
		t.Parallel()

		a := &digest.Analysis{Title: "Статья", ActionItems: []string{"Сделать."}}

		got := digest.FormatMarkdown(a)

		assert.Equal(t, "*Статья*\n\n*Action Items:*\n- [ ] Сделать.", got)
	})
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "blank", title: "  ", want: "article"},
		{name: "reserved characters", title: `a/b:c*d?"e"<f>|g`, want: "a_b_c_d__e__f__g"},
		{name: "backslash", title: `a\b`, want: "a_b"},
		{name: "whitespace runs", title: "Hello   World\tAgain", want: "Hello_World_Again"},
		{name: "cyrillic", title: "Как писать тесты", want: "Как_писать_тесты"},
		{name: "long title", title: strings.Repeat("я", 200), want: strings.Repeat("я", 120)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, digest.SanitizeFileName(tt.title))
		})
	}
}
