// Package domain defines the core business entities for brickset.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LegoSet: One record of the bundled LEGO set dataset
//   - PackagingType: The closed packaging vocabulary
//   - LoadError: The single failure mode of dataset loading
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
