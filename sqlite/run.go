package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/htmlgrade"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ htmlgrade.RunService = (*RunService)(nil)

// RunService implements htmlgrade.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores the run and its checks in a single transaction.
func (s *RunService) CreateRun(ctx context.Context, run *htmlgrade.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CheckedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source_url, source_path, content_hash, checked_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Source.URL, run.Source.Path, run.ContentHash, formatTime(run.CheckedAt)); err != nil {
		return err
	}

	for _, c := range run.Result.Checks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_checks (run_id, selector, found)
			VALUES (?, ?, ?)
		`, run.ID, c.Selector, c.Found); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*htmlgrade.Run, error) {
	runs, err := s.findRuns(ctx, "id = ?", []any{id}, 0, 0)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, htmlgrade.Errorf(htmlgrade.ENOTFOUND, "run not found")
	}
	return runs[0], nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter htmlgrade.RunFilter) ([]*htmlgrade.Run, error) {
	where := "1=1"
	var args []any
	if filter.Source != nil {
		where = "(source_url = ? OR source_path = ?)"
		args = append(args, *filter.Source, *filter.Source)
	}
	return s.findRuns(ctx, where, args, filter.Limit, filter.Offset)
}

func (s *RunService) findRuns(ctx context.Context, where string, args []any, limit, offset int) ([]*htmlgrade.Run, error) {
	var query strings.Builder
	query.WriteString("SELECT id, source_url, source_path, content_hash, checked_at FROM runs WHERE ")
	query.WriteString(where)
	query.WriteString(" ORDER BY checked_at DESC")
	appendPagination(&query, &args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*htmlgrade.Run
	for rows.Next() {
		var run htmlgrade.Run
		var checkedAt string

		if err := rows.Scan(&run.ID, &run.Source.URL, &run.Source.Path, &run.ContentHash, &checkedAt); err != nil {
			return nil, err
		}
		if run.CheckedAt, err = parseTime(checkedAt, "checked_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows must be closed before issuing further queries on the single connection.
	rows.Close()

	for _, run := range runs {
		if run.Result, err = s.findChecks(ctx, run.ID); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (s *RunService) findChecks(ctx context.Context, runID string) (*htmlgrade.CheckResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT selector, found FROM run_checks
		WHERE run_id = ?
		ORDER BY selector
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &htmlgrade.CheckResult{Checks: []htmlgrade.SelectorCheck{}}
	for rows.Next() {
		var c htmlgrade.SelectorCheck
		if err := rows.Scan(&c.Selector, &c.Found); err != nil {
			return nil, fmt.Errorf("failed to scan check: %w", err)
		}
		result.Checks = append(result.Checks, c)
	}
	return result, rows.Err()
}
