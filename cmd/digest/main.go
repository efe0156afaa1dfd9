package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/readingassistant/digest"
	"github.com/readingassistant/digest/analyze"
	"github.com/readingassistant/digest/fs"
	"github.com/readingassistant/digest/gofpdf"
	"github.com/readingassistant/digest/goquery"
	dighttp "github.com/readingassistant/digest/http"
	"github.com/readingassistant/digest/readability"
	"github.com/readingassistant/digest/rod"
	digslog "github.com/readingassistant/digest/slog"
	"github.com/readingassistant/digest/sqlite"
	"github.com/readingassistant/digest/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads environment overrides. Set before calling Run().
	Getenv func(string) string

	// Config is loaded by Run().
	Config *Config

	// SQLite database used by the history service.
	DB *sqlite.DB

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("digest"),
		kong.Description("Condense web articles into a summary, key ideas and action items"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'digest --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.Config, err = LoadConfig(cli.Config, m.Getenv)
	if err != nil {
		return err
	}
	cli.applyTo(m.Config)
	if err := m.Config.Validate(); err != nil {
		return err
	}
	deps.Config = m.Config
	deps.Logger = newLogger(stderr, cli.Verbose, cli.LogFormat)

	defer m.Close()

	cmd := strings.Fields(kongCtx.Command())[0]

	if cli.needsHistory(cmd) {
		if err := m.openDB(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set %s to use a different database path\n", dbPathEnv)
			return err
		}
		deps.Analyses = sqlite.NewAnalysisService(m.DB)
	}

	if cmd == "analyze" || cmd == "batch" || cmd == "serve" {
		analyzer, err := m.newAnalyzer(deps.Logger)
		if err != nil {
			return err
		}
		if deps.Analyses != nil {
			analyzer = analyze.NewRecorder(analyzer, deps.Analyses, deps.Logger)
		}
		deps.Analyzer = digslog.NewLoggingAnalyzer(analyzer, deps.Logger)
		deps.RateLimiter = analyze.NewDomainLimiter(m.Config.Fetch.DomainRate, m.Config.Fetch.DomainBurst)
	}

	if cmd == "batch" {
		client := &http.Client{Timeout: m.Config.Fetch.Timeout}
		deps.Sitemaps = dighttp.NewSitemapService(client, m.Config.Fetch.UserAgent)
	}

	var pdf digest.PDFRenderer
	if m.Config.Output.PDF {
		pdf = gofpdf.NewRenderer(m.Config.Output.Font)
	}
	deps.Exporter = fs.NewExporter(m.Config.Output.Dir, pdf)
	if cmd == "serve" {
		deps.PDF = gofpdf.NewRenderer(m.Config.Output.Font)
	}

	return kongCtx.Run(deps)
}

// openDB opens the history database, creating its directory if needed.
func (m *Main) openDB() error {
	path := m.Config.DB
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	m.closers = append(m.closers, m.DB)
	return nil
}

// newAnalyzer wires the fetcher, extractor and heuristics chosen by the
// configuration into a pipeline.
func (m *Main) newAnalyzer(logger *slog.Logger) (digest.Analyzer, error) {
	cfg := m.Config

	var fetcher digest.Fetcher
	if cfg.Fetch.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cfg.Fetch.Timeout),
			rod.WithUserAgent(cfg.Fetch.UserAgent),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = f
	} else {
		fetcher = dighttp.NewFetcher(
			dighttp.WithTimeout(cfg.Fetch.Timeout),
			dighttp.WithUserAgent(cfg.Fetch.UserAgent),
		)
	}
	m.closers = append(m.closers, fetcher)

	extractor, err := newExtractor(cfg.Extractor)
	if err != nil {
		return nil, err
	}

	source := analyze.NewSource(
		digslog.NewLoggingFetcher(fetcher, logger),
		digslog.NewLoggingExtractor(extractor, logger),
		logger,
	)
	source.RetryDelays = analyze.BackoffDelays(cfg.Fetch.Retries)

	pipeline := analyze.NewPipeline(source).WithVocabulary(cfg.Markers)
	pipeline.Summarizer.MaxSentences = cfg.Summary.MaxSentences
	return pipeline, nil
}

func newExtractor(name string) (digest.Extractor, error) {
	switch name {
	case ExtractorHeuristic:
		return goquery.NewExtractor(), nil
	case ExtractorReadability:
		return readability.NewExtractor(), nil
	case ExtractorTrafilatura:
		return trafilatura.NewExtractor(), nil
	}
	return nil, digest.Errorf(digest.EINVALID, "unknown extractor %q", name)
}

// newLogger builds the process logger on w. Verbose lowers the level to
// debug; format selects the text or JSON handler.
func newLogger(w io.Writer, verbose bool, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
