package parcel

import (
	"errors"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

// Kind names the entity in errors and logs.
const Kind = "Package"

var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Data is the inline payload describing a package. Every field except ShelfID
// is mandatory; zero values are valid content.
type Data struct {
	QRCode   string
	Size     float64
	Weight   float64
	Location string
	Status   string
	ShelfID  *string
}

// Package is a parcel tracked by the dispatch system.
//
// Invariants:
//   - id is a valid identifier (generated or caller-supplied)
//   - status is not blank
//   - can only be created through NewPackage
type Package struct {
	id       kernel.ID
	qrCode   string
	size     float64
	weight   float64
	location string
	status   string
	shelfID  *string

	isConstructed bool
}

// NewPackage builds a Package from an identifier and its data. It is used both
// when the resolver creates a package and when repositories rehydrate one.
//
// Example:
//
//	pkg, err := parcel.NewPackage(kernel.NewID(), parcel.Data{
//	    QRCode: "QR1", Size: 1, Weight: 2, Location: "A", Status: "PENDING",
//	})
func NewPackage(id kernel.ID, data Data) (*Package, error) {
	if err := errors.Join(
		id.Validate(),
		validateStatus(data.Status),
	); err != nil {
		return nil, err
	}

	var shelfID *string
	if data.ShelfID != nil {
		s := *data.ShelfID
		shelfID = &s
	}

	return &Package{
		id:            id,
		qrCode:        data.QRCode,
		size:          data.Size,
		weight:        data.Weight,
		location:      data.Location,
		status:        data.Status,
		shelfID:       shelfID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Package was created through NewPackage.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *Package) ID() kernel.ID    { return p.id }
func (p *Package) QRCode() string   { return p.qrCode }
func (p *Package) Size() float64    { return p.size }
func (p *Package) Weight() float64  { return p.weight }
func (p *Package) Location() string { return p.location }
func (p *Package) Status() string   { return p.status }
func (p *Package) ShelfID() *string { return p.shelfID }

// Data returns the package fields as an inline payload.
func (p *Package) Data() Data {
	return Data{
		QRCode:   p.qrCode,
		Size:     p.size,
		Weight:   p.weight,
		Location: p.location,
		Status:   p.status,
		ShelfID:  p.shelfID,
	}
}

func validateStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return errs.NewValueIsRequiredError("package status")
	}
	return nil
}
