package commands

import (
	"context"
	"errors"

	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// UpdateTaskCommandHandler applies administrative overwrites to a task.
type UpdateTaskCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewUpdateTaskCommandHandler creates the handler. A nil clock falls back to SystemClock.
func NewUpdateTaskCommandHandler(uowFactory UoWFactory, clock Clock) UpdateTaskCommandHandler {
	return UpdateTaskCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrSystem(clock),
	}
}

// Handle locks the task, checks that a newly referenced package or robot
// exists, applies the changes and returns the task joined with both entities.
//
// Errors: ObjectNotFoundError for the task, or for a package/robot that a new
// id points at; the completion invariant error from task.Apply.
func (h UpdateTaskCommandHandler) Handle(ctx context.Context, command UpdateTaskCommand) (ports.TaskDetails, error) {
	if err := command.Validate(); err != nil {
		return ports.TaskDetails{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.TaskDetails{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	current, err := taskRepo.GetForUpdate(ctx, command.TaskID())
	if err != nil {
		return ports.TaskDetails{}, err
	}

	changes := command.Changes()
	if changes.PackageID != nil {
		if _, err = uow.PackageRepository().Get(ctx, *changes.PackageID); err != nil {
			return ports.TaskDetails{}, referenceError(err)
		}
	}
	if changes.RobotID != nil {
		if _, err = uow.RobotRepository().Get(ctx, *changes.RobotID); err != nil {
			return ports.TaskDetails{}, referenceError(err)
		}
	}

	if err = current.Apply(changes, h.clock()); err != nil {
		return ports.TaskDetails{}, err
	}

	if err = taskRepo.Update(ctx, current); err != nil {
		return ports.TaskDetails{}, err
	}

	details, err := taskRepo.GetDetails(ctx, current.ID(), ports.IncludeAll)
	if err != nil {
		return ports.TaskDetails{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.TaskDetails{}, err
	}

	return details, nil
}

// referenceError passes not-found errors through untouched so the caller sees
// which kind was missing; anything else is a store failure.
func referenceError(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	return errs.NewStoreError("check task reference", err)
}
