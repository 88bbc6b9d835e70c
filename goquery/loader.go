package goquery

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/htmlgrade"
)

// Ensure Loader implements htmlgrade.DocumentLoader at compile time.
var _ htmlgrade.DocumentLoader = (*Loader)(nil)

// Loader reads HTML from a local file or fetches it from a URL, then parses
// it in memory.
type Loader struct {
	// Fetcher retrieves remote documents. Required for URL sources.
	Fetcher htmlgrade.Fetcher

	// Snapshots, if set, receives a copy of every fetched document before
	// it is parsed.
	Snapshots htmlgrade.SnapshotWriter
}

// NewLoader creates a Loader that fetches remote documents with fetcher.
func NewLoader(fetcher htmlgrade.Fetcher) *Loader {
	return &Loader{Fetcher: fetcher}
}

// Load retrieves and parses the document identified by src.
func (l *Loader) Load(ctx context.Context, src htmlgrade.Source) (*htmlgrade.Page, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	var html string
	if src.IsRemote() {
		var err error
		if html, err = l.fetch(ctx, src); err != nil {
			return nil, err
		}
	} else {
		b, err := os.ReadFile(src.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, htmlgrade.Errorf(htmlgrade.ENOTFOUND, "%s does not exist", src.Path)
		} else if err != nil {
			return nil, htmlgrade.Errorf(htmlgrade.EINVALID, "failed to read %s: %v", src.Path, err)
		}
		html = string(b)
	}

	doc, err := ParseString(html)
	if err != nil {
		return nil, err
	}

	return &htmlgrade.Page{
		Source:      src,
		Document:    doc,
		Title:       doc.Title(),
		ContentHash: htmlgrade.ContentHash(html),
		Size:        len(html),
	}, nil
}

func (l *Loader) fetch(ctx context.Context, src htmlgrade.Source) (string, error) {
	if l.Fetcher == nil {
		return "", htmlgrade.Errorf(htmlgrade.EINTERNAL, "no fetcher configured for %s", src.URL)
	}

	html, err := l.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		if htmlgrade.ErrorCode(err) == htmlgrade.EINTERNAL {
			return "", htmlgrade.Errorf(htmlgrade.EFETCH, "failed to fetch %s: %v", src.URL, err)
		}
		return "", err
	}

	if l.Snapshots != nil {
		if err := l.Snapshots.WriteSnapshot(ctx, src, html); err != nil {
			return "", err
		}
	}

	return html, nil
}
