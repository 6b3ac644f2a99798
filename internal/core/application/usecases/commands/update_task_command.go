package commands

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrUpdateTaskCommandIsNotConstructed = errors.New(
	"UpdateTaskCommand must be created via NewUpdateTaskCommand constructor",
)

// UpdateTaskInput carries the fields an administrator wants to overwrite.
// Nil fields are left as they are.
type UpdateTaskInput struct {
	PackageID   *string
	RobotID     *string
	Status      *string
	CompletedAt *time.Time
}

// UpdateTaskCommand is a permissive overwrite of a task. No status transition
// is enforced; only the completion invariant is re-established by the handler.
type UpdateTaskCommand struct { //nolint:recvcheck //using for validation
	taskID  kernel.ID
	changes task.Changes

	guard guard.ConstructorGuard
}

// NewUpdateTaskCommand validates the task id and the supplied fields.
// A supplied id or status must not be blank.
func NewUpdateTaskCommand(taskID string, in UpdateTaskInput) (UpdateTaskCommand, error) {
	cmd := UpdateTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setPackageID(in.PackageID),
		cmd.setRobotID(in.RobotID),
		cmd.setStatus(in.Status),
	); err != nil {
		return UpdateTaskCommand{}, err
	}

	if in.CompletedAt != nil {
		ts := *in.CompletedAt
		cmd.changes.CompletedAt = &ts
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTaskCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskCommandIsNotConstructed)
}

func (c UpdateTaskCommand) TaskID() kernel.ID {
	return c.taskID
}

// Changes returns the overwrite to apply.
func (c UpdateTaskCommand) Changes() task.Changes {
	return c.changes
}

func (c *UpdateTaskCommand) setTaskID(raw string) error {
	id, err := requiredID("taskId", raw)
	if err != nil {
		return err
	}
	c.taskID = id
	return nil
}

func (c *UpdateTaskCommand) setPackageID(raw *string) error {
	if raw == nil {
		return nil
	}
	id, err := kernel.ParseID(*raw)
	if err != nil {
		return errs.NewValidationErrorWithCause("packageId", RuleNotBlank, err)
	}
	c.changes.PackageID = &id
	return nil
}

func (c *UpdateTaskCommand) setRobotID(raw *string) error {
	if raw == nil {
		return nil
	}
	id, err := kernel.ParseID(*raw)
	if err != nil {
		return errs.NewValidationErrorWithCause("robotId", RuleNotBlank, err)
	}
	c.changes.RobotID = &id
	return nil
}

func (c *UpdateTaskCommand) setStatus(raw *string) error {
	if raw == nil {
		return nil
	}
	status, err := task.NewStatus(*raw)
	if err != nil {
		return errs.NewValidationErrorWithCause("status", RuleNotBlank, err)
	}
	c.changes.Status = &status
	return nil
}
