// Package domain defines the core types for convert-code-refs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Reference: A code citation parsed from a code-ref block
//   - LineSpec: The optional line locator of a Reference
//   - Link: The hyperlink built for a Reference
//   - FileResult / Summary: Per-file and total conversion counts
//   - Options: Run options shared by the CLI and the services
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
