package mock

import (
	"context"

	"github.com/readingassistant/digest"
)

var _ digest.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of digest.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, siteURL string, filter *digest.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *digest.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, siteURL, filter)
}
