package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var ErrCompleteTaskCommandIsNotConstructed = errors.New(
	"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
)

// CompleteTaskCommand marks a task as COMPLETED.
//
// Example:
//
//	cmd, err := NewCompleteTaskCommand(taskID)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, task.ErrAlreadyCompleted) {
//	    // completing twice is refused
//	}
type CompleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteTaskCommand(taskID string) (CompleteTaskCommand, error) {
	id, err := requiredID("taskId", taskID)
	if err != nil {
		return CompleteTaskCommand{}, err
	}
	return CompleteTaskCommand{taskID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}

func (c CompleteTaskCommand) TaskID() kernel.ID {
	return c.taskID
}
