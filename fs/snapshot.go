package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/htmlgrade"
)

// Ensure SnapshotWriter implements htmlgrade.SnapshotWriter at compile time.
var _ htmlgrade.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter saves fetched HTML to a fixed file path.
// Each write replaces the previous snapshot atomically: content goes to
// path.tmp first and is renamed over path once complete.
type SnapshotWriter struct {
	path string
}

// NewSnapshotWriter creates a SnapshotWriter targeting path.
func NewSnapshotWriter(path string) *SnapshotWriter {
	return &SnapshotWriter{path: path}
}

// Path returns the snapshot file path.
func (w *SnapshotWriter) Path() string {
	return w.path
}

func (w *SnapshotWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteSnapshot writes html to the snapshot path.
func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, src htmlgrade.Source, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return htmlgrade.Errorf(htmlgrade.EINVALID, "failed to create snapshot directory: %v", err)
	}

	if err := os.WriteFile(w.tempPath(), []byte(html), 0644); err != nil {
		return htmlgrade.Errorf(htmlgrade.EINVALID, "failed to write snapshot of %s: %v", src, err)
	}

	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return htmlgrade.Errorf(htmlgrade.EINVALID, "failed to write snapshot of %s: %v", src, err)
	}

	return nil
}
