package commands

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/guard"
)

var ErrDeleteTaskCommandIsNotConstructed = errors.New(
	"DeleteTaskCommand must be created via NewDeleteTaskCommand constructor",
)

// DeleteTaskCommand removes a task. The linked package and robot are kept.
type DeleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteTaskCommand(taskID string) (DeleteTaskCommand, error) {
	id, err := requiredID("taskId", taskID)
	if err != nil {
		return DeleteTaskCommand{}, err
	}
	return DeleteTaskCommand{taskID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTaskCommandIsNotConstructed)
}

func (c DeleteTaskCommand) TaskID() kernel.ID {
	return c.taskID
}
