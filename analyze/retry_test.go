package analyze_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/readingassistant/digest/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelays(t *testing.T) {
	t.Parallel()

	assert.Empty(t, analyze.BackoffDelays(0))
	assert.Empty(t, analyze.BackoffDelays(-1))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, analyze.BackoffDelays(3))
}

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("returns first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := analyze.FetchWithRetry(context.Background(), "https://example.com", fetch, []time.Duration{time.Millisecond}, nil)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("connection reset")
			}
			return "ok", nil
		}

		html, err := analyze.FetchWithRetry(context.Background(), "https://example.com", fetch, []time.Duration{time.Millisecond, time.Millisecond}, nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("boom")
		}

		_, err := analyze.FetchWithRetry(context.Background(), "https://example.com", fetch, []time.Duration{time.Millisecond}, nil)

		require.EqualError(t, err, "boom")
		assert.Equal(t, 2, calls)
	})

	t.Run("makes a single attempt without delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("boom")
		}

		_, err := analyze.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, nil)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("boom")
		}

		_, err := analyze.FetchWithRetry(ctx, "https://example.com", fetch, []time.Duration{time.Hour}, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
