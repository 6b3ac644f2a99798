// Package parcel provides the Package entity of the fleet dispatch domain: a
// physical parcel identified by its QR code that a task asks a robot to carry.
//
// The package includes:
//   - Package: the entity with identity, dimensions, location and status
//   - Data: the inline payload used to create a Package on first reference
//
// Key business rules:
//   - A Package must have a valid identifier and a non-empty status
//   - Status values are free-form (PENDING, IN_TRANSIT, DELIVERED, ...)
//   - Packages are created once and are read-only afterwards
package parcel
