package commands

import (
	"context"

	"fleetdispatch/internal/core/ports"
)

// CompleteTaskCommandHandler runs the guarded COMPLETED transition.
type CompleteTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	clock      Clock
}

// NewCompleteTaskCommandHandler creates the handler. A nil clock falls back to SystemClock.
func NewCompleteTaskCommandHandler(uowFactory TaskUoWFactory, clock Clock) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrSystem(clock),
	}
}

// Handle locks the task row, completes it and returns it joined with its
// package and robot. The lock makes the check and the write one step: of two
// concurrent completions exactly one succeeds and the other gets
// task.ErrAlreadyCompleted.
func (h CompleteTaskCommandHandler) Handle(ctx context.Context, command CompleteTaskCommand) (ports.TaskDetails, error) {
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

	if err = current.Complete(h.clock()); err != nil {
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
