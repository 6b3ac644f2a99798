// Package ports defines the persistence contracts of the dispatch core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability: the PostgreSQL adapter and the
// in-memory adapter both implement them.
package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
)

// PackageRepository persists packages. Packages are only ever created and read.
type PackageRepository interface {
	// Add persists a new package under its id (generated or caller-supplied).
	// A duplicate id or QR code fails with a StoreError wrapping errs.ErrAlreadyExists.
	Add(ctx context.Context, pkg *parcel.Package) error

	// Get returns the package or an *errs.ObjectNotFoundError with kind "Package".
	Get(ctx context.Context, id kernel.ID) (*parcel.Package, error)
}
