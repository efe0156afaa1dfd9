// Package digest turns a web article into a condensed reading digest: the
// cleaned body text, an extractive summary, key-idea sentences and
// action-item lines. Every step is a deterministic rule-based heuristic.
//
// This package contains domain types, interfaces and the pure text-analysis
// algorithms following Ben Johnson's Standard Package Layout. Implementations
// that need a third-party dependency live in subdirectories named after it
// (e.g., goquery/, sqlite/, chi/).
package digest
