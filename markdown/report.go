// Package markdown renders check results as GitHub Flavored Markdown using
// github.com/nao1215/markdown.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/htmlgrade"
	"github.com/nao1215/markdown"
)

// WriteReport writes a Markdown report for result, checked against page.
func WriteReport(w io.Writer, page *htmlgrade.Page, result *htmlgrade.CheckResult) error {
	md := markdown.NewMarkdown(w)

	md.H1("HTML Check Report")
	md.PlainText("")

	rows := [][]string{
		{"Source", code(page.Source.String())},
	}
	if page.Title != "" {
		rows = append(rows, []string{"Title", escapeCell(page.Title)})
	}
	rows = append(rows,
		[]string{"Content Hash", code(page.ContentHash)},
		[]string{"Found", fmt.Sprintf("%d of %d", result.FoundCount(), result.Len())},
	)
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Selectors")
	md.PlainText("")

	if result.Len() == 0 {
		md.PlainText("No selectors were checked.")
		return md.Build()
	}

	checks := make([][]string, 0, result.Len())
	for _, c := range result.Checks {
		status := "❌ no"
		if c.Found {
			status = "✅ yes"
		}
		checks = append(checks, []string{code(c.Selector), status})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Selector", "Found"},
		Rows:   checks,
	})

	if missing := result.Len() - result.FoundCount(); missing > 0 {
		md.PlainText("")
		md.Warningf("%d selector(s) not found.", missing)
	}

	return md.Build()
}

// code formats s as inline code safe for a table cell.
func code(s string) string {
	return "`" + escapeCell(s) + "`"
}

// escapeCell escapes the column separator.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
