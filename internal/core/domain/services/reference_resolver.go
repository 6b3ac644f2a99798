package services

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// ReferenceResolver resolves package and robot references for task creation.
//
// Resolution rules, identical for both kinds:
//   - RefInline: create a new entity from the data under a generated id
//   - RefByID: return the stored entity, or ObjectNotFoundError{kind, id}
//   - RefByIDOrCreate: return the stored entity (the inline data is ignored),
//     or create one from the data under the supplied id
//   - RefMissing: MissingReferenceError
//
// Example:
//
//	resolver := services.NewReferenceResolver()
//	pkg, err := resolver.ResolvePackage(ctx, uow.PackageRepository(), cmd.Package())
//	if err != nil {
//	    return err // the caller rolls the unit of work back
//	}
type ReferenceResolver struct {
	newID func() kernel.ID
}

// NewReferenceResolver creates a resolver that generates ids with kernel.NewID.
func NewReferenceResolver() ReferenceResolver {
	return ReferenceResolver{newID: kernel.NewID}
}

// NewReferenceResolverWithIDs creates a resolver with a custom id generator.
func NewReferenceResolverWithIDs(newID func() kernel.ID) ReferenceResolver {
	return ReferenceResolver{newID: newID}
}

// ResolvePackage resolves a package reference against repo.
func (r ReferenceResolver) ResolvePackage(
	ctx context.Context,
	repo ports.PackageRepository,
	ref kernel.Reference[parcel.Data],
) (*parcel.Package, error) {
	return resolve(ctx, parcel.Kind, ref, r.generator(), repo.Get, repo.Add, parcel.NewPackage)
}

// ResolveRobot resolves a robot reference against repo.
func (r ReferenceResolver) ResolveRobot(
	ctx context.Context,
	repo ports.RobotRepository,
	ref kernel.Reference[robot.Data],
) (*robot.Robot, error) {
	return resolve(ctx, robot.Kind, ref, r.generator(), repo.Get, repo.Add, robot.NewRobot)
}

func (r ReferenceResolver) generator() func() kernel.ID {
	if r.newID == nil {
		return kernel.NewID
	}
	return r.newID
}

func resolve[E any, D any](
	ctx context.Context,
	kind string,
	ref kernel.Reference[D],
	newID func() kernel.ID,
	get func(context.Context, kernel.ID) (E, error),
	add func(context.Context, E) error,
	build func(kernel.ID, D) (E, error),
) (E, error) {
	var zero E

	switch ref.Kind() {
	case kernel.RefInline:
		data, _ := ref.Data()
		return create(ctx, newID(), data, add, build)

	case kernel.RefByID, kernel.RefByIDOrCreate:
		existing, err := get(ctx, ref.ID())
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return zero, err
		}

		data, ok := ref.Data()
		if !ok {
			return zero, errs.NewObjectNotFoundError(kind, ref.ID().String())
		}
		return create(ctx, ref.ID(), data, add, build)

	default:
		return zero, errs.NewMissingReferenceError(kind)
	}
}

func create[E any, D any](
	ctx context.Context,
	id kernel.ID,
	data D,
	add func(context.Context, E) error,
	build func(kernel.ID, D) (E, error),
) (E, error) {
	var zero E

	entity, err := build(id, data)
	if err != nil {
		return zero, err
	}
	if err = add(ctx, entity); err != nil {
		return zero, err
	}
	return entity, nil
}
