package mock

import (
	"context"

	"github.com/fwojciec/htmlgrade"
)

var _ htmlgrade.Document = (*Document)(nil)

// Document is a mock implementation of htmlgrade.Document.
type Document struct {
	CountFn func(selector string) (int, error)
}

func (d *Document) Count(selector string) (int, error) {
	return d.CountFn(selector)
}

var _ htmlgrade.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of htmlgrade.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context, src htmlgrade.Source) (*htmlgrade.Page, error)
}

func (l *DocumentLoader) Load(ctx context.Context, src htmlgrade.Source) (*htmlgrade.Page, error) {
	return l.LoadFn(ctx, src)
}

var _ htmlgrade.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter is a mock implementation of htmlgrade.SnapshotWriter.
type SnapshotWriter struct {
	WriteSnapshotFn func(ctx context.Context, src htmlgrade.Source, html string) error
}

func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, src htmlgrade.Source, html string) error {
	return w.WriteSnapshotFn(ctx, src, html)
}
