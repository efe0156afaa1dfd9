package digest

import (
	"context"
	"net/url"
	"strings"
)

// NoTitle is the title of a fetched page that declares none.
const NoTitle = "(no title)"

// DefaultUserAgent identifies the digest client to the sites it fetches.
const DefaultUserAgent = "ReadingAssistantBot/1.0 (+https://example.com)"

// Article is the cleaned content of a single web page.
// A failed fetch yields an Article with the URL set and an empty Title and Text.
type Article struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, or NoTitle when the page has none.
	Title string

	// Text is the main body as plain text. Paragraphs are separated by
	// blank lines; it may be empty.
	Text string
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML as UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor locates the main article content in an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the page title and body text.
	Extract(html string) (*ExtractResult, error)
}

// ArticleSource fetches a URL and returns its article content.
type ArticleSource interface {
	// FetchArticle returns EINVALID for a malformed URL. Network and parse
	// failures are not returned; they yield an Article with empty fields.
	FetchArticle(ctx context.Context, url string) (*Article, error)
}

// ValidateURL returns EINVALID unless rawURL is a non-blank absolute URL
// with a host.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return Errorf(EINVALID, "url must be provided")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid url %q: %v", rawURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return Errorf(EINVALID, "url %q must be absolute", rawURL)
	}
	return nil
}

// DomainLimiter paces requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
