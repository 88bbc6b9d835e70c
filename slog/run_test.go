package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/htmlgrade"
	"github.com/fwojciec/htmlgrade/mock"
	gradeslog "github.com/fwojciec/htmlgrade/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRunService_CreateRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.RunService{
		CreateRunFn: func(_ context.Context, run *htmlgrade.Run) error {
			run.ID = "run-1"
			return nil
		},
	}

	svc := gradeslog.NewLoggingRunService(inner, newDebugLogger(&buf))
	run := &htmlgrade.Run{Source: htmlgrade.Source{URL: "http://example.com"}, Result: &htmlgrade.CheckResult{}}
	err := svc.CreateRun(context.Background(), run)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, `msg="record run"`)
	assert.Contains(t, output, "id=run-1")
	assert.Contains(t, output, "source=http://example.com")
}

func TestLoggingRunService_FindRuns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	want := []*htmlgrade.Run{{ID: "run-1"}}
	inner := &mock.RunService{
		FindRunsFn: func(_ context.Context, filter htmlgrade.RunFilter) ([]*htmlgrade.Run, error) {
			assert.Equal(t, 5, filter.Limit)
			return want, nil
		},
	}

	svc := gradeslog.NewLoggingRunService(inner, newDebugLogger(&buf))
	runs, err := svc.FindRuns(context.Background(), htmlgrade.RunFilter{Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, want, runs)
}
