// Package packagerepo persists packages through GORM.
package packagerepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
)

// PackageDTO is the row shape of the packages table.
type PackageDTO struct {
	ID        string    `gorm:"type:text;primaryKey"`
	QRCode    string    `gorm:"column:qr_code;type:text;not null;uniqueIndex"`
	Size      float64   `gorm:"type:double precision;not null"`
	Weight    float64   `gorm:"type:double precision;not null"`
	Location  string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null"`
	ShelfID   *string   `gorm:"column:shelf_id;type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

// FromDomain maps a package to its row.
func FromDomain(pkg *parcel.Package) PackageDTO {
	return PackageDTO{
		ID:       pkg.ID().String(),
		QRCode:   pkg.QRCode(),
		Size:     pkg.Size(),
		Weight:   pkg.Weight(),
		Location: pkg.Location(),
		Status:   pkg.Status(),
		ShelfID:  pkg.ShelfID(),
	}
}

// ToDomain rebuilds a package from its row.
func ToDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}

	return parcel.NewPackage(id, parcel.Data{
		QRCode:   dto.QRCode,
		Size:     dto.Size,
		Weight:   dto.Weight,
		Location: dto.Location,
		Status:   dto.Status,
		ShelfID:  dto.ShelfID,
	})
}
