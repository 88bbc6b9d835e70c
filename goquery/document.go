// Package goquery implements HTML parsing and CSS selector queries on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/htmlgrade"
)

// Ensure Document implements htmlgrade.Document at compile time.
var _ htmlgrade.Document = (*Document)(nil)

// Document is a parsed HTML page.
// Malformed markup is repaired by the HTML5 parsing algorithm, so parsing
// only fails on empty input or a read error.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML from r.
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EPARSE, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an HTML string. Returns EPARSE for blank input.
func ParseString(html string) (*Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, htmlgrade.Errorf(htmlgrade.EPARSE, "empty HTML document")
	}
	return NewDocument(strings.NewReader(html))
}

// Count returns the number of elements matching selector.
//
// goquery's Find silently matches nothing for a selector it cannot compile,
// so the selector is compiled with cascadia first and rejected with EQUERY.
func (d *Document) Count(selector string) (int, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return 0, htmlgrade.Errorf(htmlgrade.EQUERY, "invalid selector %q: %v", selector, err)
	}
	return d.doc.FindMatcher(m).Length(), nil
}

// Title returns the trimmed text of the document title, if any.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}
