package analyze_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/readingassistant/digest"
	"github.com/readingassistant/digest/analyze"
	"github.com/readingassistant/digest/goquery"
	digesthttp "github.com/readingassistant/digest/http"
	"github.com/readingassistant/digest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceWithText(title, text string) *mock.ArticleSource {
	return &mock.ArticleSource{
		FetchArticleFn: func(_ context.Context, url string) (*digest.Article, error) {
			return &digest.Article{URL: url, Title: title, Text: text}, nil
		},
	}
}

func TestPipeline_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("derives summary and action items", func(t *testing.T) {
		t.Parallel()

		text := "Это важно. Короткая строка. Нужно сделать следующее: проверить данные перед публикацией материала."
		p := analyze.NewPipeline(sourceWithText("Заметка", text))

		a, err := p.Analyze(context.Background(), "https://example.com/note")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/note", a.URL)
		assert.Equal(t, "Заметка", a.Title)
		assert.Equal(t, text, a.Text)
		assert.Equal(t, []string{"Нужно сделать следующее: проверить данные перед публикацией материала."}, a.Summary)
		assert.Empty(t, a.KeyIdeas)
		assert.Equal(t, []string{text}, a.ActionItems)
		assert.NotEmpty(t, a.ContentHash)
	})

	t.Run("returns empty lists for unreachable page", func(t *testing.T) {
		t.Parallel()

		p := analyze.NewPipeline(sourceWithText("", ""))

		a, err := p.Analyze(context.Background(), "https://unreachable.invalid")

		require.NoError(t, err)
		assert.Empty(t, a.Title)
		assert.Empty(t, a.Text)
		assert.Empty(t, a.ContentHash)

		data, err := json.Marshal(a)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"summary":[]`)
		assert.Contains(t, string(data), `"keyIdeas":[]`)
		assert.Contains(t, string(data), `"actionItems":[]`)
	})

	t.Run("returns invalid url errors", func(t *testing.T) {
		t.Parallel()

		src := &mock.ArticleSource{
			FetchArticleFn: func(_ context.Context, _ string) (*digest.Article, error) {
				return nil, digest.Errorf(digest.EINVALID, "url must be provided")
			},
		}

		_, err := analyze.NewPipeline(src).Analyze(context.Background(), "")

		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})

	t.Run("stamps creation time", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		p := analyze.NewPipeline(sourceWithText("T", "text"))
		p.Now = func() time.Time { return now }

		a, err := p.Analyze(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, now, a.CreatedAt)
	})

	t.Run("hashes identical text identically", func(t *testing.T) {
		t.Parallel()

		p := analyze.NewPipeline(sourceWithText("T", "Один и тот же текст."))

		a1, err := p.Analyze(context.Background(), "https://example.com/1")
		require.NoError(t, err)
		a2, err := p.Analyze(context.Background(), "https://example.com/2")
		require.NoError(t, err)

		assert.Equal(t, a1.ContentHash, a2.ContentHash)
	})

	t.Run("uses custom vocabulary", func(t *testing.T) {
		t.Parallel()

		text := "The bottom line is that tests save a lot of time.\nYou must renew the certificate."
		p := analyze.NewPipeline(sourceWithText("T", text)).WithVocabulary(digest.Vocabulary{
			KeyIdeas: []string{"bottom line"},
			Actions:  []string{"must"},
		})

		a, err := p.Analyze(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"The bottom line is that tests save a lot of time."}, a.KeyIdeas)
		assert.Equal(t, []string{"You must renew the certificate."}, a.ActionItems)
	})
}

func TestPipeline_EndToEnd(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Как писать тесты</title></head>
<body>
<nav><a href="/">Главная</a></nav>
<article>
<h1>Как писать тесты</h1>
<p>Тесты помогают находить ошибки задолго до того, как их увидят пользователи.</p>
<p>Главная мысль простая: тест должен проверять поведение, а не реализацию.</p>
<p>Рекомендуется запускать тесты на каждом коммите в общей ветке.</p>
</article>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher := digesthttp.NewFetcher()
	defer fetcher.Close()
	src := analyze.NewSource(fetcher, goquery.NewExtractor(), discardLogger())

	a, err := analyze.NewPipeline(src).Analyze(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Как писать тесты", a.Title)
	assert.NotContains(t, a.Text, "Главная\n")
	assert.Equal(t, []string{"Главная мысль простая: тест должен проверять поведение, а не реализацию."}, a.KeyIdeas)
	assert.Equal(t, []string{"Рекомендуется запускать тесты на каждом коммите в общей ветке."}, a.ActionItems)
	assert.LessOrEqual(t, len(a.Summary), digest.DefaultMaxSentences)
	assert.NotEmpty(t, a.Summary)
}
