package htmlgrade

import (
	"context"
	"time"
)

// Run is a recorded check of one document.
type Run struct {
	ID          string       `json:"id"`
	Source      Source       `json:"source"`
	ContentHash string       `json:"contentHash"`
	Result      *CheckResult `json:"result"`
	CheckedAt   time.Time    `json:"checkedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Source.String() == "" {
		return Errorf(EINVALID, "run source required")
	}
	if r.Result == nil {
		return Errorf(EINVALID, "run result required")
	}
	return nil
}

// RunService represents a service for recording check runs.
type RunService interface {
	// CreateRun stores a run, assigning its ID and CheckedAt.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	// Source matches either the URL or the path of the run source.
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
