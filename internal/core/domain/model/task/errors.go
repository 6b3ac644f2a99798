package task

import (
	"errors"
	"fmt"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

var (
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask constructor")

	// ErrAlreadyCompleted is the sentinel behind AlreadyCompletedError.
	ErrAlreadyCompleted = errors.New("task is already completed")

	// ErrCompletedAtWithoutCompletion rejects a completion timestamp on a task
	// whose status is not COMPLETED.
	ErrCompletedAtWithoutCompletion = errs.NewValueIsInvalidErrorWithCause(
		"completedAt",
		fmt.Errorf("completedAt may only be set when status is %s", Completed),
	)
)

// AlreadyCompletedError is returned by Task.Complete on a completed task.
type AlreadyCompletedError struct {
	TaskID kernel.ID
}

func (e *AlreadyCompletedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyCompleted, e.TaskID)
}

func (e *AlreadyCompletedError) Unwrap() error {
	return ErrAlreadyCompleted
}
