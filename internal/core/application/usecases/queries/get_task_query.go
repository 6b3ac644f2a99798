// Package queries contains read operations for retrieving tasks.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries run outside a unit of work against a ports.TaskReader.
package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrGetTaskQueryIsNotConstructed = errors.New(
	"GetTaskQuery must be created via NewGetTaskQuery constructor",
)

// GetTaskQuery fetches one task joined with its package and robot.
//
// Example:
//
//	query, err := NewGetTaskQuery("5b6f...")
//	if err != nil {
//	    return err
//	}
//	details, err := NewGetTaskQueryHandler(reader).Handle(ctx, query)
type GetTaskQuery struct {
	taskID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetTaskQuery rejects a blank task id.
func NewGetTaskQuery(taskID string) (GetTaskQuery, error) {
	id, err := parseRequiredID("taskId", taskID)
	if err != nil {
		return GetTaskQuery{}, err
	}
	return GetTaskQuery{taskID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetTaskQueryIsNotConstructed)
}

func (q GetTaskQuery) TaskID() kernel.ID {
	return q.taskID
}

func parseRequiredID(field, raw string) (kernel.ID, error) {
	id, err := kernel.ParseID(raw)
	if err != nil {
		return kernel.ID{}, errs.NewValidationErrorWithCause(field, "must be provided", err)
	}
	return id, nil
}
