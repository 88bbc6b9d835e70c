// Package http provides an HTTP-based implementation of htmlgrade.Fetcher
// for documents that don't require JavaScript rendering.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/htmlgrade"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies htmlgrade in HTTP requests.
const DefaultUserAgent = "htmlgrade/1.0"

// DefaultMaxBodySize is the largest response body accepted.
const DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

// Ensure Fetcher implements htmlgrade.Fetcher at compile time.
var _ htmlgrade.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the largest accepted body. Larger bodies fail with
// EFETCH. Zero or less disables the limit.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL and decodes it to
// UTF-8 using the charset from the Content-Type header or the document's
// meta tags.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EINVALID, "%s is not a valid URL: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EFETCH, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", htmlgrade.Errorf(htmlgrade.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	var body io.Reader = resp.Body
	if f.maxBodySize > 0 {
		// One extra byte tells an oversize body from one exactly at the limit.
		body = io.LimitReader(body, f.maxBodySize+1)
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EFETCH, "failed to read %s: %v", url, err)
	}
	if f.maxBodySize > 0 && int64(len(raw)) > f.maxBodySize {
		return "", htmlgrade.Errorf(htmlgrade.EFETCH, "%s exceeds %d bytes", url, f.maxBodySize)
	}
	if len(raw) == 0 {
		return "", nil
	}

	r, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EPARSE, "unsupported charset for %s: %v", url, err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EPARSE, "failed to decode %s: %v", url, err)
	}

	return string(b), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
