package queries

import (
	"errors"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/guard"
)

var (
	ErrListTasksQueryIsNotConstructed = errors.New(
		"ListTasksQuery must be created via NewListTasksQuery constructor",
	)
	ErrListTasksByRobotQueryIsNotConstructed = errors.New(
		"ListTasksByRobotQuery must be created via NewListTasksByRobotQuery constructor",
	)
	ErrListTasksByPackageQueryIsNotConstructed = errors.New(
		"ListTasksByPackageQuery must be created via NewListTasksByPackageQuery constructor",
	)
)

// ListTasksQuery lists tasks filtered by any combination of status, robot and
// package. Blank filters are ignored. Results are newest first.
//
// Example:
//
//	query := NewListTasksQuery("ASSIGNED", "", "")
//	tasks, err := NewListTasksQueryHandler(reader).Handle(ctx, query)
type ListTasksQuery struct {
	filter ports.TaskFilter

	guard guard.ConstructorGuard
}

func NewListTasksQuery(status, robotID, packageID string) ListTasksQuery {
	filter := ports.TaskFilter{
		Status:  task.Status(status),
		Include: ports.IncludeAll,
	}
	if id, err := kernel.ParseID(robotID); err == nil {
		filter.RobotID = id
	}
	if id, err := kernel.ParseID(packageID); err == nil {
		filter.PackageID = id
	}

	return ListTasksQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

func (q ListTasksQuery) Validate() error {
	return q.guard.Validate(ErrListTasksQueryIsNotConstructed)
}

// Filter returns the store filter for this query.
func (q ListTasksQuery) Filter() ports.TaskFilter {
	return q.filter
}

// ListTasksByRobotQuery lists a robot's tasks joined with their packages only.
type ListTasksByRobotQuery struct {
	robotID kernel.ID

	guard guard.ConstructorGuard
}

func NewListTasksByRobotQuery(robotID string) (ListTasksByRobotQuery, error) {
	id, err := parseRequiredID("robotId", robotID)
	if err != nil {
		return ListTasksByRobotQuery{}, err
	}
	return ListTasksByRobotQuery{robotID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTasksByRobotQuery) Validate() error {
	return q.guard.Validate(ErrListTasksByRobotQueryIsNotConstructed)
}

func (q ListTasksByRobotQuery) Filter() ports.TaskFilter {
	return ports.TaskFilter{RobotID: q.robotID, Include: ports.IncludePackage}
}

// ListTasksByPackageQuery lists a package's tasks joined with their robots only.
type ListTasksByPackageQuery struct {
	packageID kernel.ID

	guard guard.ConstructorGuard
}

func NewListTasksByPackageQuery(packageID string) (ListTasksByPackageQuery, error) {
	id, err := parseRequiredID("packageId", packageID)
	if err != nil {
		return ListTasksByPackageQuery{}, err
	}
	return ListTasksByPackageQuery{packageID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTasksByPackageQuery) Validate() error {
	return q.guard.Validate(ErrListTasksByPackageQueryIsNotConstructed)
}

func (q ListTasksByPackageQuery) Filter() ports.TaskFilter {
	return ports.TaskFilter{PackageID: q.packageID, Include: ports.IncludeRobot}
}
