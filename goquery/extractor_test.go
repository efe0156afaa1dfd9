package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/readingassistant/digest"
	"github.com/readingassistant/digest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longPara = "Этот абзац достаточно длинный, чтобы пройти фильтр."

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers article over main", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main><p>Текст из main, который тоже достаточно длинный.</p></main>
<article><p>` + longPara + `</p></article>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, longPara, result.Text)
	})

	t.Run("skips blank article", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<article>   </article>
<main><p>` + longPara + `</p></main>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, longPara, result.Text)
	})

	t.Run("matches class heuristics case-insensitively", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="sidebar"><p>Боковая панель с длинным текстом ссылок.</p></div>
<div class="Post-Body"><p>` + longPara + `</p></div>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, longPara, result.Text)
	})

	t.Run("article class beats post id", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="post-1"><p>Текст контейнера с идентификатором поста.</p></div>
<div class="article-body"><p>` + longPara + `</p></div>
</body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, longPara, result.Text)
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><p>` + longPara + `</p></div></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, longPara, result.Text)
	})

	t.Run("joins long fragments and drops short ones", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
<h1>Заголовок статьи про тестирование</h1>
<p>Коротко.</p>
<p>` + longPara + `</p>
<ul><li>Пункт списка тоже достаточно длинный.</li><li>Мало.</li></ul>
</article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Заголовок статьи про тестирование\n\n"+longPara+"\n\nПункт списка тоже достаточно длинный.", result.Text)
	})

	t.Run("uses container text when no fragment survives", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article><div>Первый</div><div>второй   блок</div><p>Мало.</p></article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Первый второй блок Мало.", result.Text)
	})

	t.Run("ignores scripts and styles", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>p { color: red; }</style></head><body><article>
<script>var tracking = "very long tracking script content";</script>
<div>Текст</div>
</article></body></html>`

		result, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Текст", result.Text)
	})

	t.Run("returns empty text for empty page", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract("")

		require.NoError(t, err)
		assert.Equal(t, digest.NoTitle, result.Title)
		assert.Empty(t, result.Text)
	})

	t.Run("returns empty text when no rule matches", func(t *testing.T) {
		t.Parallel()

		e := &goquery.Extractor{Rules: []goquery.Rule{goquery.TagRule("article")}}

		result, err := e.Extract(`<html><body><p>` + longPara + `</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, result.Text)
	})

	t.Run("accepts custom rules", func(t *testing.T) {
		t.Parallel()

		rules := append([]goquery.Rule{goquery.AttrContainsRule("div", "class", "story")}, goquery.DefaultRules()...)
		e := &goquery.Extractor{Rules: rules}
		html := `<html><body>
<article><p>Текст статьи, который уступает пользовательскому правилу.</p></article>
<div class="StoryText"><p>` + longPara + `</p></div>
</body></html>`

		result, err := e.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, longPara, result.Text)
	})
}

func TestExtractor_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "title element",
			html: `<html><head><title>  Заголовок
страницы </title><meta property="og:title" content="OG"></head></html>`,
			want: "Заголовок страницы",
		},
		{
			name: "og title when title is blank",
			html: `<html><head><title> </title><meta property="og:title" content=" Из OG "></head></html>`,
			want: "Из OG",
		},
		{
			name: "placeholder when both missing",
			html: `<html><head></head><body><p>text</p></body></html>`,
			want: digest.NoTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := goquery.NewExtractor().Extract(tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Title)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	got := goquery.NormalizeText("  a\r\nb\rc\n\n\n\n\nd  \n")

	assert.Equal(t, "a\nb\nc\n\nd", got)
}

func TestContainerText(t *testing.T) {
	t.Parallel()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(`<div id="c"><p>` + longPara + `</p><p>` + longPara + `</p></div>`))
	require.NoError(t, err)

	got := goquery.ContainerText(doc.Find("#c"))

	assert.Equal(t, longPara+"\n\n"+longPara, got)
}
