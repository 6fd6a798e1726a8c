// Package pagetoc extracts a table of contents from HTML fragments.
// It locates heading elements within a configurable tag range, derives
// the nesting hierarchy from heading level and document order, and
// produces filtered inner HTML suitable for TOC entry labels.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, readability/).
package pagetoc
