// Package report renders the store's records for export.
//
// Three formats are supported: CSV (the canonical export format, one
// row per record with the algorithm named in the header), Markdown
// (for documentation and sharing), and JSON (for tool integration).
//
// The writers format only; where the rendered bytes end up (stdout,
// an atomically-written file) is the caller's concern.
package report
