package htmlgrade

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Document is a parsed HTML page that can be queried with CSS selectors.
type Document interface {
	// Count returns the number of elements matching selector.
	// Returns EQUERY if the selector cannot be compiled.
	Count(selector string) (int, error)
}

// SelectorCheck records whether a single selector matched.
type SelectorCheck struct {
	Selector string
	Found    bool
}

// CheckResult maps selectors to their presence in a document.
// Checks are unique by selector and sorted ascending.
type CheckResult struct {
	Checks []SelectorCheck
}

// Len returns the number of checked selectors.
func (r *CheckResult) Len() int {
	return len(r.Checks)
}

// Found reports whether selector matched. ok is false if selector was not
// part of the check.
func (r *CheckResult) Found(selector string) (found, ok bool) {
	i, ok := slices.BinarySearchFunc(r.Checks, selector, func(c SelectorCheck, s string) int {
		switch {
		case c.Selector < s:
			return -1
		case c.Selector > s:
			return 1
		}
		return 0
	})
	if !ok {
		return false, false
	}
	return r.Checks[i].Found, true
}

// FoundCount returns how many selectors matched.
func (r *CheckResult) FoundCount() int {
	n := 0
	for _, c := range r.Checks {
		if c.Found {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the result as a JSON object keyed by selector,
// preserving the sorted order of the checks.
func (r *CheckResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, c := range r.Checks {
		if i > 0 {
			buf.WriteByte(',')
		}
		// Encode appends a newline, which is insignificant whitespace.
		if err := enc.Encode(c.Selector); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if c.Found {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Check evaluates selectors against doc. Selectors are sorted before
// evaluation so the result order does not depend on input order, and
// duplicate selectors produce a single entry. The input slice is not
// modified.
//
// The first selector that fails to compile aborts the check; no partial
// result is returned.
func Check(doc Document, selectors []string) (*CheckResult, error) {
	if doc == nil {
		return nil, Errorf(EINVALID, "document required")
	}

	sorted := slices.Clone(selectors)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	result := &CheckResult{Checks: make([]SelectorCheck, 0, len(sorted))}
	for _, sel := range sorted {
		n, err := doc.Count(sel)
		if err != nil {
			return nil, err
		}
		result.Checks = append(result.Checks, SelectorCheck{Selector: sel, Found: n > 0})
	}
	return result, nil
}
