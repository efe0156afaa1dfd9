package digest_test

import (
	"testing"

	"github.com/readingassistant/digest"
	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https url", url: "https://example.com/article"},
		{name: "http url with query", url: "http://example.com/a?id=1"},
		{name: "empty", url: "", wantErr: true},
		{name: "blank", url: "   ", wantErr: true},
		{name: "missing scheme", url: "example.com/article", wantErr: true},
		{name: "missing host", url: "http://", wantErr: true},
		{name: "space in host", url: "http://exa mple.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := digest.ValidateURL(tt.url)

			if tt.wantErr {
				assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalysis_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires url", func(t *testing.T) {
		t.Parallel()

		a := &digest.Analysis{Title: "t"}

		assert.Equal(t, digest.EINVALID, digest.ErrorCode(a.Validate()))
	})

	t.Run("accepts analysis with url", func(t *testing.T) {
		t.Parallel()

		a := &digest.Analysis{URL: "https://example.com"}

		assert.NoError(t, a.Validate())
	})
}
