package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlgrade"
)

// Ensure LoggingRunService implements htmlgrade.RunService.
var _ htmlgrade.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with debug logging for writes.
type LoggingRunService struct {
	next   htmlgrade.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next htmlgrade.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the assigned ID.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *htmlgrade.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.DebugContext(ctx, "record run",
			"id", run.ID,
			"source", run.Source.String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindRunByID delegates to the wrapped service.
func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (*htmlgrade.Run, error) {
	return s.next.FindRunByID(ctx, id)
}

// FindRuns delegates to the wrapped service.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter htmlgrade.RunFilter) ([]*htmlgrade.Run, error) {
	return s.next.FindRuns(ctx, filter)
}
