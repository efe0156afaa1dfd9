package mock

import (
	"context"

	"github.com/readingassistant/digest"
)

var _ digest.ArticleSource = (*ArticleSource)(nil)

// ArticleSource is a mock implementation of digest.ArticleSource.
type ArticleSource struct {
	FetchArticleFn func(ctx context.Context, url string) (*digest.Article, error)
}

func (s *ArticleSource) FetchArticle(ctx context.Context, url string) (*digest.Article, error) {
	return s.FetchArticleFn(ctx, url)
}
