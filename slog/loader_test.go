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

func TestLoggingDocumentLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs source, size and hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		want := &htmlgrade.Page{Size: 42, ContentHash: "deadbeef"}
		inner := &mock.DocumentLoader{
			LoadFn: func(_ context.Context, _ htmlgrade.Source) (*htmlgrade.Page, error) {
				return want, nil
			},
		}

		loader := gradeslog.NewLoggingDocumentLoader(inner, newDebugLogger(&buf))
		page, err := loader.Load(context.Background(), htmlgrade.Source{URL: "http://example.com"})

		require.NoError(t, err)
		assert.Same(t, want, page)
		output := buf.String()
		assert.Contains(t, output, `msg="load document"`)
		assert.Contains(t, output, "source=http://example.com")
		assert.Contains(t, output, "bytes=42")
		assert.Contains(t, output, "hash=deadbeef")
	})

	t.Run("logs error without page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentLoader{
			LoadFn: func(_ context.Context, src htmlgrade.Source) (*htmlgrade.Page, error) {
				return nil, htmlgrade.Errorf(htmlgrade.ENOTFOUND, "%s does not exist", src.Path)
			},
		}

		loader := gradeslog.NewLoggingDocumentLoader(inner, newDebugLogger(&buf))
		_, err := loader.Load(context.Background(), htmlgrade.Source{Path: "index.html"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "source=index.html")
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, `err="index.html does not exist"`)
	})
}

func TestLoggingChecksLoader_LoadChecks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ChecksLoader{
		LoadChecksFn: func(_ string) ([]string, error) {
			return []string{"h1", "title"}, nil
		},
	}

	loader := gradeslog.NewLoggingChecksLoader(inner, newDebugLogger(&buf))
	checks, err := loader.LoadChecks("checks.json")

	require.NoError(t, err)
	assert.Equal(t, []string{"h1", "title"}, checks)
	output := buf.String()
	assert.Contains(t, output, `msg="load checks"`)
	assert.Contains(t, output, "path=checks.json")
	assert.Contains(t, output, "count=2")
}
