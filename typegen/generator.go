// Package typegen translates a descriptor catalog into type declarations for a
// target language.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Language-agnostic grouping (group.go) partitions the catalog by namespace
//     and resolves which names each group imports from the others
//  2. Language-specific generators (typescript/) render one file per group
//
// Front ends (gosource, catalog) only produce descriptors; nothing in this
// package knows where types came from.
//
// # Design Decisions
//
//   - The catalog is fully materialized before translation: import resolution
//     needs the namespace of every referenced type up front.
//   - Groups are translated concurrently but assembled in group order, so
//     output is byte-identical to a sequential run.
//   - Deterministic output (sorted imports) enables CI validation with Check.
//   - Problems that do not prevent output are Diagnostics, not errors.
package typegen

import "github.com/teranos/tsgen/descriptor"

// Generator renders namespace groups for one target language.
// Implementations must be safe for concurrent use: the engine calls
// GenerateFile from several goroutines.
type Generator interface {
	// Language returns the language name (e.g., "typescript")
	Language() string

	// FileExtension returns the file extension without dot (e.g., "ts")
	FileExtension() string

	// GenerateFile renders the complete file for one group
	GenerateFile(catalog *descriptor.Catalog, group Group) (string, []Diagnostic, error)
}
