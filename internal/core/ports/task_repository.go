package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/domain/model/task"
)

// Include selects which linked entities are loaded alongside tasks.
type Include uint8

const (
	IncludePackage Include = 1 << iota
	IncludeRobot

	IncludeNone Include = 0
	IncludeAll          = IncludePackage | IncludeRobot
)

// Has reports whether flag is selected.
func (i Include) Has(flag Include) bool {
	return i&flag == flag
}

// TaskFilter narrows a task listing. Zero-valued fields do not filter.
type TaskFilter struct {
	Status    task.Status
	RobotID   kernel.ID
	PackageID kernel.ID
	Include   Include
}

// TaskDetails is a task joined with its linked entities. Package and Robot are
// nil when they were not requested through Include.
type TaskDetails struct {
	Task    *task.Task
	Package *parcel.Package
	Robot   *robot.Robot
}

// TaskReader is the read side of the task store, used by query handlers.
type TaskReader interface {
	// GetDetails returns the task joined with the requested entities, or an
	// *errs.ObjectNotFoundError with kind "Task".
	GetDetails(ctx context.Context, id kernel.ID, include Include) (TaskDetails, error)

	// List returns tasks matching filter, newest first by creation time.
	List(ctx context.Context, filter TaskFilter) ([]TaskDetails, error)
}

// TaskRepository persists task aggregates.
type TaskRepository interface {
	TaskReader

	// Add inserts a new task. The store assigns createdAt/updatedAt.
	Add(ctx context.Context, t *task.Task) error

	// Update overwrites an existing task. Fails with ObjectNotFoundError when absent.
	Update(ctx context.Context, t *task.Task) error

	// Delete removes a task. Fails with ObjectNotFoundError when absent.
	Delete(ctx context.Context, id kernel.ID) error

	// Get returns the bare task or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*task.Task, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*task.Task, error)
}

// TaskStatsReader reports aggregate task figures for metrics.
type TaskStatsReader interface {
	// CountByStatus returns the number of tasks per status. Statuses without
	// tasks are absent from the map.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
