package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/readingassistant/digest"
	"github.com/readingassistant/digest/analyze"
)

// Run executes the batch command. Each analysis is written to stdout as one
// JSON line, in input order; progress goes to stderr.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.File != "" {
		fromFile, err := readURLFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		urls = append(urls, fromFile...)
	}
	if c.Sitemap != "" {
		discovered, err := c.discover(deps)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", digest.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Found %d URLs in sitemap\n", len(discovered))
		urls = append(urls, discovered...)
	}
	urls = dedupe(urls)
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs given")
		return digest.Errorf(digest.EINVALID, "no URLs given")
	}

	batch := &analyze.Batch{
		Analyzer:    deps.Analyzer,
		RateLimiter: deps.RateLimiter,
		Concurrency: c.Concurrency,
	}

	failed := 0
	progress := func(e analyze.ProgressEvent) {
		switch e.Type {
		case analyze.ProgressFailed:
			failed++
			fmt.Fprintf(deps.Stderr, "[%d/%d] skip %s: %s\n", e.Completed, e.Total, e.URL, digest.ErrorMessage(e.Error))
		case analyze.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
		}
	}

	analyses, err := batch.AnalyzeAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	for _, a := range analyses {
		if err := enc.Encode(a); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stderr, "Analyzed %d of %d URLs\n", len(analyses), len(urls))
	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "%d URLs skipped\n", failed)
	}
	return nil
}

// discover lists the sitemap URLs that pass the include and exclude
// patterns, capped at Max.
func (c *BatchCmd) discover(deps *Dependencies) ([]string, error) {
	filter, err := digest.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		return nil, err
	}
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
	if err != nil {
		return nil, err
	}
	if c.Max > 0 && len(urls) > c.Max {
		urls = urls[:c.Max]
	}
	return urls, nil
}

// readURLFile returns the URLs listed in path, one per line. Blank lines
// and lines starting with '#' are ignored.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}

// dedupe drops repeated URLs, keeping the first occurrence.
func dedupe(urls []string) []string {
	out := make([]string, 0, len(urls))
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
