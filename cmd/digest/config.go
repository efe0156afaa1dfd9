package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/readingassistant/digest"
	"github.com/readingassistant/digest/analyze"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadConfig.
const (
	configPathEnv = "DIGEST_CONFIG"
	dbPathEnv     = "DIGEST_DB"
	addrEnv       = "DIGEST_ADDR"
	userAgentEnv  = "DIGEST_USER_AGENT"
)

// Extractor names accepted in the config file.
const (
	ExtractorHeuristic   = "heuristic"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)

// Config is the file-backed configuration of the digest command.
type Config struct {
	Fetch     FetchConfig       `yaml:"fetch"`
	Extractor string            `yaml:"extractor"`
	Summary   SummaryConfig     `yaml:"summary"`
	Markers   digest.Vocabulary `yaml:"markers"`
	Server    ServerConfig      `yaml:"server"`
	DB        string            `yaml:"db"`
	Output    OutputConfig      `yaml:"output"`
}

// FetchConfig controls how pages are retrieved.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
	Retries   int           `yaml:"retries"`

	// Browser renders pages in headless Chrome instead of plain HTTP.
	Browser bool `yaml:"browser"`

	// DomainRate is the per-host request rate of a batch, per second.
	DomainRate float64 `yaml:"domainRate"`

	// DomainBurst is how many requests a host may receive back to back
	// before DomainRate applies.
	DomainBurst int `yaml:"domainBurst"`
}

// SummaryConfig controls the summary scorer.
type SummaryConfig struct {
	MaxSentences int `yaml:"maxSentences"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr      string  `yaml:"addr"`
	RateLimit float64 `yaml:"rateLimit"`
	Burst     int     `yaml:"burst"`
}

// OutputConfig controls report export.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	PDF  bool   `yaml:"pdf"`
	Font string `yaml:"font"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			Timeout:     10 * time.Second,
			UserAgent:   digest.DefaultUserAgent,
			DomainRate:  1.0,
			DomainBurst: analyze.DefaultDomainBurst,
		},
		Extractor: ExtractorHeuristic,
		Summary:   SummaryConfig{MaxSentences: digest.DefaultMaxSentences},
		Markers:   digest.DefaultVocabulary(),
		Server: ServerConfig{
			Addr:      ":8080",
			RateLimit: 5,
			Burst:     10,
		},
		DB:     defaultDBPath(),
		Output: OutputConfig{Dir: "."},
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at path
// (or $DIGEST_CONFIG when path is empty), then environment overrides.
// getenv is usually os.Getenv.
func LoadConfig(path string, getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = getenv(configPathEnv)
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvOverrides(getenv)

	// An empty list in the file keeps the built-in markers.
	cfg.Markers = cfg.Markers.Merge(digest.DefaultVocabulary())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readFile decodes the YAML file at path over cfg. Keys absent from the
// file keep their current values; unknown keys are an error.
func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides(getenv func(string) string) {
	if v := getenv(dbPathEnv); v != "" {
		c.DB = v
	}
	if v := getenv(addrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := getenv(userAgentEnv); v != "" {
		c.Fetch.UserAgent = v
	}
}

// Validate returns EINVALID if a setting is out of range.
func (c *Config) Validate() error {
	switch c.Extractor {
	case ExtractorHeuristic, ExtractorReadability, ExtractorTrafilatura:
	default:
		return digest.Errorf(digest.EINVALID, "unknown extractor %q (want heuristic, readability or trafilatura)", c.Extractor)
	}
	if c.Fetch.Timeout <= 0 {
		return digest.Errorf(digest.EINVALID, "fetch.timeout must be positive")
	}
	if c.Fetch.Retries < 0 {
		return digest.Errorf(digest.EINVALID, "fetch.retries must not be negative")
	}
	if c.Fetch.DomainRate <= 0 {
		return digest.Errorf(digest.EINVALID, "fetch.domainRate must be positive")
	}
	if c.Fetch.DomainBurst <= 0 {
		return digest.Errorf(digest.EINVALID, "fetch.domainBurst must be positive")
	}
	if c.Summary.MaxSentences <= 0 {
		return digest.Errorf(digest.EINVALID, "summary.maxSentences must be positive")
	}
	if c.Server.RateLimit < 0 {
		return digest.Errorf(digest.EINVALID, "server.rateLimit must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.Burst <= 0 {
		return digest.Errorf(digest.EINVALID, "server.burst must be positive when rate limiting")
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "digest.db"
	}
	return filepath.Join(home, ".digest", "history.db")
}
