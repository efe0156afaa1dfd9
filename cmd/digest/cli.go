package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/readingassistant/digest"
	"github.com/readingassistant/digest/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Config      *Config
	Analyzer    digest.Analyzer
	Analyses    digest.AnalysisService
	RateLimiter digest.DomainLimiter
	Sitemaps    digest.SitemapService
	Exporter    *fs.Exporter
	PDF         digest.PDFRenderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `short:"C" type:"path" help:"YAML config file (default: DIGEST_CONFIG env)"`
	DB        string `help:"History database path (default: DIGEST_DB env or ~/.digest/history.db)"`
	Verbose   bool   `short:"v" help:"Log debug output"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (text, json)"`
	Extractor string `short:"e" help:"Content extractor: heuristic, readability or trafilatura"`
	Browser   bool   `short:"b" help:"Render pages in headless Chrome"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze a single article"`
	Batch   BatchCmd   `cmd:"" help:"Analyze many articles concurrently"`
	Serve   ServeCmd   `cmd:"" help:"Serve the analyzer over HTTP"`
	History HistoryCmd `cmd:"" help:"Browse saved analyses"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Format string `short:"f" enum:"text,json,markdown" default:"text" help:"Output format (text, json, markdown)"`
	Export bool   `short:"x" help:"Write the report to the output directory"`
	PDF    bool   `help:"Also export the report as PDF (implies --export)"`
	Out    string `short:"o" type:"path" help:"Output directory for exported reports"`
	Save   bool   `short:"s" help:"Save the analysis to the history database"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"Article URLs"`
	File        string   `short:"i" type:"existingfile" help:"Read URLs from a file, one per line"`
	Sitemap     string   `help:"Also analyze the pages listed in this site's sitemap"`
	Include     []string `help:"Only sitemap URLs matching this regex (repeatable)"`
	Exclude     []string `help:"Skip sitemap URLs matching this regex (repeatable)"`
	Max         int      `default:"100" help:"Maximum number of sitemap URLs (0 for no limit)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent analysis limit"`
	Save        bool     `short:"s" help:"Save the analyses to the history database"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (default: server.addr or DIGEST_ADDR env)"`
}

// HistoryCmd groups the history subcommands.
type HistoryCmd struct {
	List   HistoryListCmd   `cmd:"" default:"withargs" help:"List saved analyses, newest first"`
	Show   HistoryShowCmd   `cmd:"" help:"Show a saved analysis"`
	Delete HistoryDeleteCmd `cmd:"" help:"Delete a saved analysis"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct {
	URL    string `help:"Only analyses of this URL"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of analyses"`
	Offset int    `help:"Number of analyses to skip"`
}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID     string `arg:"" help:"Analysis ID"`
	Format string `short:"f" enum:"text,json,markdown" default:"text" help:"Output format (text, json, markdown)"`
}

// HistoryDeleteCmd is the "history delete" subcommand.
type HistoryDeleteCmd struct {
	ID    string `arg:"" help:"Analysis ID"`
	Force bool   `help:"Confirm deletion"`
}

// applyTo overrides cfg with the flags that were set.
func (c *CLI) applyTo(cfg *Config) {
	if c.DB != "" {
		cfg.DB = c.DB
	}
	if c.Extractor != "" {
		cfg.Extractor = c.Extractor
	}
	if c.Browser {
		cfg.Fetch.Browser = true
	}
	if c.Analyze.Out != "" {
		cfg.Output.Dir = c.Analyze.Out
	}
	if c.Analyze.PDF {
		cfg.Output.PDF = true
	}
	if c.Serve.Addr != "" {
		cfg.Server.Addr = c.Serve.Addr
	}
}

// needsHistory reports whether cmd reads or writes the history database.
func (c *CLI) needsHistory(cmd string) bool {
	switch cmd {
	case "history", "serve":
		return true
	case "analyze":
		return c.Analyze.Save
	case "batch":
		return c.Batch.Save
	}
	return false
}
