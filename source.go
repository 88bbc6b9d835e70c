package htmlgrade

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
)

// Source identifies where a document is loaded from.
// Exactly one of URL or Path is set.
type Source struct {
	URL  string `json:"url,omitempty"`
	Path string `json:"path,omitempty"`
}

// IsRemote reports whether the source is fetched over HTTP.
func (s Source) IsRemote() bool {
	return s.URL != ""
}

// String returns the URL or path, whichever is set.
func (s Source) String() string {
	if s.URL != "" {
		return s.URL
	}
	return s.Path
}

// Validate returns an error if the source is not usable.
func (s Source) Validate() error {
	switch {
	case s.URL == "" && s.Path == "":
		return Errorf(EINVALID, "document URL or file required")
	case s.URL != "" && s.Path != "":
		return Errorf(EINVALID, "document URL and file are mutually exclusive")
	case s.URL != "":
		return ValidateURL(s.URL)
	}
	return nil
}

// ValidateURL returns EINVALID unless raw is an absolute http or https URL
// with a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "%s is not a valid URL", raw)
	}
	return nil
}

// Page is a loaded document together with facts about its raw content.
type Page struct {
	Source   Source
	Document Document

	// Title is the text of the document's <title> element, if any.
	Title string

	// ContentHash is the xxhash64 of the raw HTML, hex encoded.
	ContentHash string

	// Size is the raw HTML length in bytes.
	Size int
}

// DocumentLoader loads and parses a single HTML document.
type DocumentLoader interface {
	// Load retrieves the document identified by src and parses it.
	// Returns EINVALID for a malformed source, ENOTFOUND for a missing local
	// file, EFETCH if retrieval fails and EPARSE if the content is unusable.
	Load(ctx context.Context, src Source) (*Page, error)
}

// SnapshotWriter stores a copy of fetched HTML.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, src Source, html string) error
}

// ContentHash computes a hash of the content using xxhash.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
