// Package diagnostic provides the ordered report that every planning stage
// appends to.
//
// A Diagnostics value is an append-only log of (severity, code, args) entries.
// Entries are never removed; an error entry marks the owning result unusable
// but earlier entries and partial results stay available for inspection.
package diagnostic
