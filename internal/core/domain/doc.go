// Package domain defines the core business entities for weekrep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A top-level document fetched from the content store
//   - Property: A named, typed document property
//   - Block: One node in a document's content tree
//   - WeekPolicy / WeekParams: Week-numbering policy selection
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
