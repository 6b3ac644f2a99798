package packagerepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/adapters/out/postgres/pgerr"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker records writes for the owning unit of work.
type changeTracker interface {
	TrackChange(kind string, id kernel.ID, op ports.ChangeOp)
}

// NewGormPackageRepository creates a repository bound to db, which is either
// the pool or an open transaction. tracker may be nil.
func NewGormPackageRepository(db *gorm.DB, tracker changeTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new package. Duplicate ids or QR codes match errs.ErrAlreadyExists.
func (r *GormPackageRepository) Add(ctx context.Context, pkg *parcel.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	dto := FromDomain(pkg)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add package", err)
	}

	if r.tracker != nil {
		r.tracker.TrackChange(parcel.Kind, pkg.ID(), ports.ChangeCreated)
	}
	return nil
}

// Get retrieves a package by id.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(parcel.Kind, id.String())
		}
		return nil, pgerr.Wrap("get package", err)
	}

	return ToDomain(dto)
}
