// Package kernel provides the shared primitives of the fleet dispatch domain.
//
// The package includes:
//   - ID: an opaque entity identifier, either generated (UUID text) or supplied by a caller
//   - Reference: a sum type describing how a task points at a package or robot
//     (by id, by inline data, or by id with inline data to create it when absent)
//
// Both types are immutable values and safe for concurrent use.
package kernel
