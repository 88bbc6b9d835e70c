// Package htmlgrade checks an HTML document for the presence of CSS
// selectors. It loads one document from a URL or local file, evaluates a
// list of selectors against it, and reports which of them matched at
// least one element.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package htmlgrade
