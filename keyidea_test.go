package digest_test

import (
	"testing"

	"github.com/readingassistant/digest"
	"github.com/stretchr/testify/assert"
)

func TestKeyIdeaDetector_Extract(t *testing.T) {
	t.Parallel()

	t.Run("selects sentences with markers in order", func(t *testing.T) {
		t.Parallel()

		sentences := []string{
			"Главная мысль статьи в том, что тесты экономят время.",
			"Погода была хорошей весь день.",
			"В итоге команда выпустила релиз вовремя.",
		}

		got := digest.NewKeyIdeaDetector().Extract(sentences)

		assert.Equal(t, []string{sentences[0], sentences[2]}, got)
	})

	t.Run("has no length filter", func(t *testing.T) {
		t.Parallel()

		got := digest.NewKeyIdeaDetector().Extract([]string{"Это важно."})

		assert.Equal(t, []string{"Это важно."}, got)
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		t.Parallel()

		s := "Вывод простой: меньше кода, меньше ошибок."

		got := digest.NewKeyIdeaDetector().Extract([]string{s, s})

		assert.Equal(t, []string{s, s}, got)
	})

	t.Run("matches markers case-insensitively", func(t *testing.T) {
		t.Parallel()

		d := &digest.KeyIdeaDetector{Markers: []string{"Bottom Line"}}

		got := d.Extract([]string{"THE BOTTOM LINE is simple.", "Nothing here."})

		assert.Equal(t, []string{"THE BOTTOM LINE is simple."}, got)
	})

	t.Run("returns empty slice without matches", func(t *testing.T) {
		t.Parallel()

		got := digest.NewKeyIdeaDetector().Extract([]string{"Обычное предложение без маркеров."})

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
