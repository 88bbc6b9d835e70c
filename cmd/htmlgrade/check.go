package main

import (
	"bytes"

	"github.com/fwojciec/htmlgrade"
	"github.com/fwojciec/htmlgrade/fs"
	"github.com/fwojciec/htmlgrade/markdown"
)

// Validate checks the arguments before any document is fetched.
// Kong calls it while parsing.
func (c *CheckCmd) Validate() error {
	if err := fs.Exists(c.Checks); err != nil {
		return err
	}
	return c.source().Validate()
}

// Run executes the check command. Nothing is written to stdout unless every
// step succeeds.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if err := c.Validate(); err != nil {
		return err
	}

	src := c.source()
	page, err := deps.Loader.Load(deps.Ctx, src)
	if err != nil {
		return err
	}

	selectors, err := deps.Checks.LoadChecks(c.Checks)
	if err != nil {
		return err
	}

	result, err := htmlgrade.Check(page.Document, selectors)
	if err != nil {
		return err
	}

	if c.Record {
		if deps.Runs == nil {
			return htmlgrade.Errorf(htmlgrade.EINTERNAL, "run history is not configured")
		}
		run := &htmlgrade.Run{
			Source:      src,
			ContentHash: page.ContentHash,
			Result:      result,
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	switch c.Format {
	case "markdown":
		err = markdown.WriteReport(&buf, page, result)
	default:
		err = htmlgrade.WriteJSON(&buf, result)
	}
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(deps.Stdout)
	return err
}

func (c *CheckCmd) source() htmlgrade.Source {
	return htmlgrade.Source{URL: c.URL, Path: c.File}
}
