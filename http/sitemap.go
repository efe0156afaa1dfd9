package http

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/readingassistant/digest"
)

// MaxSitemaps bounds how many sitemap documents one discovery reads.
const MaxSitemaps = 50

// Ensure SitemapService implements digest.SitemapService at compile time.
var _ digest.SitemapService = (*SitemapService)(nil)

// SitemapService finds article URLs in a site's XML sitemaps.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a SitemapService. A nil client uses one with
// DefaultFetchTimeout.
func NewSitemapService(client *http.Client, userAgent string) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if userAgent == "" {
		userAgent = digest.DefaultUserAgent
	}
	return &SitemapService{client: client, userAgent: userAgent}
}

// DiscoverURLs returns the page URLs listed in the sitemaps of siteURL's
// host. Pages on other hosts are dropped, and when siteURL has a path only
// pages under that path are kept.
func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *digest.URLFilter) ([]string, error) {
	if err := digest.ValidateURL(siteURL); err != nil {
		return nil, err
	}
	site, _ := url.Parse(siteURL)
	prefix := strings.TrimSuffix(site.Path, "/")

	root := &url.URL{Scheme: site.Scheme, Host: site.Host}
	queue, err := s.locateSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0)
	seenURL := make(map[string]bool)
	seenSitemap := make(map[string]bool)

	for len(queue) > 0 && len(seenSitemap) < MaxSitemaps {
		sitemapURL := queue[0]
		queue = queue[1:]
		if seenSitemap[sitemapURL] {
			continue
		}
		seenSitemap[sitemapURL] = true

		pages, children, err := s.readSitemap(ctx, sitemapURL)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)

		for _, u := range pages {
			if seenURL[u] || !onSite(u, site, prefix) || !filter.Match(u) {
				continue
			}
			seenURL[u] = true
			urls = append(urls, u)
		}
	}

	return urls, nil
}

// locateSitemaps reads Sitemap: lines from robots.txt and falls back to
// /sitemap.xml when there are none.
func (s *SitemapService) locateSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	body, err := s.get(ctx, robots)
	if err == nil {
		defer body.Close()
		var sitemaps []string
		scanner := bufio.NewScanner(body)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			key, value, ok := strings.Cut(line, ":")
			if ok && strings.EqualFold(strings.TrimSpace(key), "sitemap") {
				if loc := strings.TrimSpace(value); loc != "" {
					sitemaps = append(sitemaps, loc)
				}
			}
		}
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return []string{root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}, nil
}

// readSitemap returns the page locations of a <urlset> or the child
// sitemap locations of a <sitemapindex>. A missing sitemap is empty.
func (s *SitemapService) readSitemap(ctx context.Context, sitemapURL string) (pages, children []string, err error) {
	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, nil
	}
	defer body.Close()

	var r io.Reader = body
	if strings.HasSuffix(strings.ToLower(sitemapURL), ".gz") {
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzipped sitemap %s: %w", sitemapURL, err)
		}
		defer gz.Close()
		r = gz
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, nil, fmt.Errorf("failed to parse sitemap %s: %w", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, nil
	}

	switch root.Tag {
	case "sitemapindex":
		return nil, locs(root, "sitemap"), nil
	case "urlset":
		return locs(root, "url"), nil, nil
	}
	return nil, nil, nil
}

// locs returns the trimmed <loc> text of every child element named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		if loc := el.SelectElement("loc"); loc != nil {
			if v := strings.TrimSpace(loc.Text()); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// onSite reports whether rawURL is on site's host and its path is prefix or
// lies below it.
func onSite(rawURL string, site *url.URL, prefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.EqualFold(u.Host, site.Host) {
		return false
	}
	if prefix == "" {
		return true
	}
	return u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/")
}

// get issues a GET and returns the body of a 200 response.
func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}
