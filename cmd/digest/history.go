package main

import (
	"fmt"

	"github.com/readingassistant/digest"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	filter := digest.AnalysisFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digest.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'digest analyze --save' to record one.")
		return nil
	}

	for _, a := range analyses {
		title := a.Title
		if title == "" {
			title = "No title"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", a.ID, a.CreatedAt.Format("2006-01-02 15:04"), title, a.URL)
	}

	return nil
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	a, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digest.ErrorMessage(err))
		return err
	}
	return writeAnalysis(deps.Stdout, a, c.Format)
}

// Run executes the history delete command.
func (c *HistoryDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return digest.Errorf(digest.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Analyses.DeleteAnalysis(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted analysis %s\n", c.ID)
	return nil
}
