package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlgrade"
	"github.com/fwojciec/htmlgrade/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotWriter_WriteSnapshot(t *testing.T) {
	t.Parallel()

	src := htmlgrade.Source{URL: "http://example.com"}

	t.Run("writes content to path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sample.html")
		w := fs.NewSnapshotWriter(path)

		err := w.WriteSnapshot(context.Background(), src, "<html></html>")
		require.NoError(t, err)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(b))
	})

	t.Run("replaces previous snapshot and leaves no temp file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sample.html")
		w := fs.NewSnapshotWriter(path)

		require.NoError(t, w.WriteSnapshot(context.Background(), src, "first"))
		require.NoError(t, w.WriteSnapshot(context.Background(), src, "second"))

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(b))
		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "snapshots", "today", "page.html")
		w := fs.NewSnapshotWriter(path)

		require.NoError(t, w.WriteSnapshot(context.Background(), src, "<p></p>"))

		_, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, path, w.Path())
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sample.html")
		w := fs.NewSnapshotWriter(path)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := w.WriteSnapshot(ctx, src, "<html></html>")

		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}
