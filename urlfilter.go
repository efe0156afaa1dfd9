package digest

import (
	"context"
	"regexp"
)

// SitemapService lists the pages a site publishes in its sitemaps.
type SitemapService interface {
	// DiscoverURLs returns the page URLs of the site at siteURL that pass
	// filter, in sitemap order without duplicates. Sitemaps are located via
	// robots.txt, falling back to /sitemap.xml; indexes are followed. A site
	// without sitemaps yields an empty slice. A nil filter passes all URLs.
	DiscoverURLs(ctx context.Context, siteURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects URLs by pattern. Exclude is applied after Include.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include and exclude patterns. It returns EINVALID
// for a malformed pattern and nil when both lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	f := &URLFilter{}
	var err error
	if f.Include, err = compilePatterns(include); err != nil {
		return nil, err
	}
	if f.Exclude, err = compilePatterns(exclude); err != nil {
		return nil, err
	}
	return f, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid pattern %q: %v", p, err)
		}
		res = append(res, re)
	}
	return res, nil
}

// Match reports whether url passes the filter. A nil filter passes all.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
