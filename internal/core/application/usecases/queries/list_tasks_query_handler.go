package queries

import (
	"context"

	"fleetdispatch/internal/core/ports"
)

// filteredQuery is implemented by every listing query.
type filteredQuery interface {
	Validate() error
	Filter() ports.TaskFilter
}

// ListTasksQueryHandler serves ListTasksQuery, ListTasksByRobotQuery and
// ListTasksByPackageQuery; they only differ in the filter they build.
//
// Example:
//
//	handler := NewListTasksQueryHandler(reader)
//	query, _ := NewListTasksByRobotQuery("R1")
//	tasks, err := handler.ByRobot(ctx, query)
type ListTasksQueryHandler struct {
	reader ports.TaskReader
}

func NewListTasksQueryHandler(reader ports.TaskReader) ListTasksQueryHandler {
	return ListTasksQueryHandler{reader: reader}
}

// Handle lists tasks matching the query's filters, newest first.
func (h ListTasksQueryHandler) Handle(ctx context.Context, query ListTasksQuery) ([]ports.TaskDetails, error) {
	return h.list(ctx, query)
}

// ByRobot lists the robot's tasks. An unknown robot yields an empty list.
func (h ListTasksQueryHandler) ByRobot(ctx context.Context, query ListTasksByRobotQuery) ([]ports.TaskDetails, error) {
	return h.list(ctx, query)
}

// ByPackage lists the package's tasks. An unknown package yields an empty list.
func (h ListTasksQueryHandler) ByPackage(
	ctx context.Context,
	query ListTasksByPackageQuery,
) ([]ports.TaskDetails, error) {
	return h.list(ctx, query)
}

func (h ListTasksQueryHandler) list(ctx context.Context, query filteredQuery) ([]ports.TaskDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks, err := h.reader.List(ctx, query.Filter())
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = make([]ports.TaskDetails, 0)
	}
	return tasks, nil
}
