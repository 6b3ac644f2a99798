package queries

import (
	"context"

	"fleetdispatch/internal/core/ports"
)

// GetTaskQueryHandler reads a single task with both linked entities.
type GetTaskQueryHandler struct {
	reader ports.TaskReader
}

func NewGetTaskQueryHandler(reader ports.TaskReader) GetTaskQueryHandler {
	return GetTaskQueryHandler{reader: reader}
}

// Handle returns the task or an ObjectNotFoundError with kind "Task".
func (h GetTaskQueryHandler) Handle(ctx context.Context, query GetTaskQuery) (ports.TaskDetails, error) {
	if err := query.Validate(); err != nil {
		return ports.TaskDetails{}, err
	}
	return h.reader.GetDetails(ctx, query.TaskID(), ports.IncludeAll)
}
