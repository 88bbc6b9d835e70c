package mock

import (
	"context"

	"github.com/fwojciec/htmlgrade"
)

var _ htmlgrade.RunService = (*RunService)(nil)

// RunService is a mock implementation of htmlgrade.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *htmlgrade.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*htmlgrade.Run, error)
	FindRunsFn    func(ctx context.Context, filter htmlgrade.RunFilter) ([]*htmlgrade.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *htmlgrade.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*htmlgrade.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter htmlgrade.RunFilter) ([]*htmlgrade.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
