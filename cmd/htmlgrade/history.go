package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/htmlgrade"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		return c.show(deps)
	}

	filter := htmlgrade.RunFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'htmlgrade --record' to record one.")
		return nil
	}

	for _, r := range runs {
		writeRunLine(deps.Stdout, r)
	}

	return nil
}

// show prints one run followed by its per-selector results.
func (c *HistoryCmd) show(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		return err
	}

	writeRunLine(deps.Stdout, run)
	for _, check := range run.Result.Checks {
		fmt.Fprintf(deps.Stdout, "  %-5t  %s\n", check.Found, check.Selector)
	}
	return nil
}

func writeRunLine(w io.Writer, r *htmlgrade.Run) {
	fmt.Fprintf(w, "%s  %s  %s  %d/%d\n",
		r.ID, r.CheckedAt.Format(time.RFC3339), r.Source, r.Result.FoundCount(), r.Result.Len())
}
