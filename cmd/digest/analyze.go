package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/readingassistant/digest"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	a, err := deps.Analyzer.Analyze(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digest.ErrorMessage(err))
		return err
	}

	if err := writeAnalysis(deps.Stdout, a, c.Format); err != nil {
		return err
	}

	if c.Export || c.PDF {
		paths, err := deps.Exporter.Export(a)
		for _, p := range paths {
			fmt.Fprintf(deps.Stderr, "Saved %s\n", p)
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: export failed: %v\n", err)
			return err
		}
	}

	return nil
}

// writeAnalysis renders a in the named format.
func writeAnalysis(w io.Writer, a *digest.Analysis, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(a)
	case "markdown":
		_, err := fmt.Fprintln(w, digest.FormatMarkdown(a))
		return err
	default:
		_, err := io.WriteString(w, digest.FormatPlainText(a))
		return err
	}
}
