package main

import (
	"github.com/readingassistant/digest/chi"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config.Server

	opts := []chi.Option{
		chi.WithLogger(deps.Logger),
		chi.WithRateLimit(cfg.RateLimit, cfg.Burst),
	}
	if deps.Analyses != nil {
		opts = append(opts, chi.WithAnalyses(deps.Analyses))
	}
	if deps.PDF != nil {
		opts = append(opts, chi.WithPDFRenderer(deps.PDF))
	}

	server := chi.NewServer(deps.Analyzer, opts...)
	return server.ListenAndServe(deps.Ctx, cfg.Addr)
}
