package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlgrade"
)

// Ensure LoggingDocumentLoader implements htmlgrade.DocumentLoader.
var _ htmlgrade.DocumentLoader = (*LoggingDocumentLoader)(nil)

// LoggingDocumentLoader wraps a DocumentLoader with debug logging.
type LoggingDocumentLoader struct {
	next   htmlgrade.DocumentLoader
	logger *slog.Logger
}

// NewLoggingDocumentLoader creates a new LoggingDocumentLoader.
func NewLoggingDocumentLoader(next htmlgrade.DocumentLoader, logger *slog.Logger) *LoggingDocumentLoader {
	return &LoggingDocumentLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the parsed document's size
// and content hash.
func (l *LoggingDocumentLoader) Load(ctx context.Context, src htmlgrade.Source) (page *htmlgrade.Page, err error) {
	defer func(begin time.Time) {
		var size int
		var hash string
		if page != nil {
			size, hash = page.Size, page.ContentHash
		}
		l.logger.DebugContext(ctx, "load document",
			"source", src.String(),
			"bytes", size,
			"hash", hash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, src)
}

// Ensure LoggingChecksLoader implements htmlgrade.ChecksLoader.
var _ htmlgrade.ChecksLoader = (*LoggingChecksLoader)(nil)

// LoggingChecksLoader wraps a ChecksLoader with debug logging.
type LoggingChecksLoader struct {
	next   htmlgrade.ChecksLoader
	logger *slog.Logger
}

// NewLoggingChecksLoader creates a new LoggingChecksLoader.
func NewLoggingChecksLoader(next htmlgrade.ChecksLoader, logger *slog.Logger) *LoggingChecksLoader {
	return &LoggingChecksLoader{next: next, logger: logger}
}

// LoadChecks delegates to the wrapped loader and logs the selector count.
func (l *LoggingChecksLoader) LoadChecks(path string) (checks []string, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("load checks",
			"path", path,
			"count", len(checks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadChecks(path)
}
