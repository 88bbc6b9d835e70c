package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlgrade"
	"github.com/fwojciec/htmlgrade/fs"
	"github.com/fwojciec/htmlgrade/goquery"
	gradehttp "github.com/fwojciec/htmlgrade/http"
	"github.com/fwojciec/htmlgrade/rod"
	gradeslog "github.com/fwojciec/htmlgrade/slog"
	"github.com/fwojciec/htmlgrade/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", htmlgrade.ErrorMessage(err))
		m.Close()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database, opened only for commands that need history.
	DB *sqlite.DB

	// Fetcher used for remote documents, closed by Close.
	Fetcher htmlgrade.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var fetchErr, dbErr error
	if m.Fetcher != nil {
		fetchErr = m.Fetcher.Close()
		m.Fetcher = nil
	}
	if m.DB != nil {
		dbErr = m.DB.Close()
		m.DB = nil
	}
	return errors.Join(fetchErr, dbErr)
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
		kong.Name("htmlgrade"),
		kong.Description("Check an HTML document for the presence of CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return htmlgrade.Errorf(htmlgrade.EINVALID, "no arguments provided. Run 'htmlgrade --help' for usage")
	}

	if slices.Contains(args, "--help") || slices.Contains(args, "-h") || args[0] == "help" {
		_, _ = parser.Parse(append(slices.DeleteFunc(slices.Clone(args), isHelpArg), "--help"))
		return nil
	}

	// Parse runs CheckCmd.Validate, so bad arguments fail here before any
	// browser is launched or database opened.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}

	if strings.HasPrefix(kongCtx.Command(), "history") {
		if err := m.openDB(dbPath); err != nil {
			return err
		}
		deps.Runs = sqlite.NewRunService(m.DB)
		return kongCtx.Run(deps)
	}

	if err := m.wireCheck(&cli.Check, deps, logger); err != nil {
		return err
	}
	if cli.Check.Record {
		if err := m.openDB(dbPath); err != nil {
			return err
		}
		deps.Runs = gradeslog.NewLoggingRunService(sqlite.NewRunService(m.DB), logger)
	}

	return kongCtx.Run(deps)
}

// wireCheck builds the document and checks loaders for the check command.
func (m *Main) wireCheck(cmd *CheckCmd, deps *Dependencies, logger *slog.Logger) error {
	if cmd.URL != "" {
		if cmd.Render {
			fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cmd.Timeout))
			if err != nil {
				fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			m.Fetcher = fetcher
		} else {
			m.Fetcher = gradehttp.NewFetcher(
				gradehttp.WithTimeout(cmd.Timeout),
				gradehttp.WithUserAgent(cmd.UserAgent),
			)
		}
	}

	var fetcher htmlgrade.Fetcher
	if m.Fetcher != nil {
		fetcher = gradeslog.NewLoggingFetcher(m.Fetcher, logger)
	}

	loader := goquery.NewLoader(fetcher)
	if cmd.Save != "" {
		loader.Snapshots = fs.NewSnapshotWriter(cmd.Save)
	}

	deps.Loader = gradeslog.NewLoggingDocumentLoader(loader, logger)
	deps.Checks = gradeslog.NewLoggingChecksLoader(fs.NewChecksLoader(), logger)
	return nil
}

// openDB opens the history database, creating its directory if needed.
func (m *Main) openDB(path string) error {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return fmt.Errorf("failed to open database at %q (set HTMLGRADE_DB to use a different path): %w", path, err)
	}
	return nil
}

func defaultDBPath() string {
	return filepath.Join(xdg.DataHome, "htmlgrade", "history.db")
}

func isHelpArg(arg string) bool {
	return arg == "--help" || arg == "-h" || arg == "help"
}
