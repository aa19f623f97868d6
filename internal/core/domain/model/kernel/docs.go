// Package kernel provides core domain primitives used throughout the
// fulfillment domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for validated geographic coordinates
//
// These primitives enforce domain invariants at construction time. They are
// immutable and safe for concurrent use. The zero value of each type is
// invalid; always create instances through the provided constructors.
package kernel
