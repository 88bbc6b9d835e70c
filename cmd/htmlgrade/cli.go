package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlgrade"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Loader htmlgrade.DocumentLoader
	Checks htmlgrade.ChecksLoader
	Runs   htmlgrade.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"HTMLGRADE_DB" placeholder:"PATH" help:"History database path"`
	Verbose bool   `short:"v" help:"Log fetch and load details to stderr"`

	Check   CheckCmd   `cmd:"" default:"withargs" help:"Check an HTML document for CSS selectors (default)"`
	History HistoryCmd `cmd:"" help:"List recorded check runs"`
}

// CheckCmd is the "check" subcommand. It runs when no subcommand is named.
type CheckCmd struct {
	Checks    string        `short:"c" default:"checks.json" placeholder:"CHECK_FILE" help:"JSON or YAML list of selectors to check"`
	URL       string        `short:"f" name:"url" placeholder:"URL" help:"URL of the HTML document to check"`
	File      string        `name:"file" placeholder:"PATH" help:"Local HTML file to check instead of a URL"`
	Format    string        `enum:"json,markdown" default:"json" help:"Report format (json, markdown)"`
	Render    bool          `help:"Render the page in headless Chrome before checking"`
	Save      string        `placeholder:"PATH" help:"Save the fetched HTML to this file"`
	Record    bool          `help:"Record the run in the history database"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	UserAgent string        `name:"user-agent" default:"htmlgrade/1.0" help:"User-Agent header for HTTP fetches"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID     string `arg:"" optional:"" help:"Show the selector results of this run"`
	Source string `placeholder:"URL|PATH" help:"Only show runs for this URL or file"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of runs to show"`
}
