package http

import (
	"net/http"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/generated/servers"
	"fleetdispatch/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It translates requests into commands and queries and maps results back.
type Server struct {
	// Command handlers
	createTaskHandler   commands.CreateTaskCommandHandler
	updateTaskHandler   commands.UpdateTaskCommandHandler
	completeTaskHandler commands.CompleteTaskCommandHandler
	deleteTaskHandler   commands.DeleteTaskCommandHandler

	// Query handlers
	getTaskHandler   queries.GetTaskQueryHandler
	listTasksHandler queries.ListTasksQueryHandler
}

// Handlers bundles what NewServer needs.
type Handlers struct {
	CreateTask   commands.CreateTaskCommandHandler
	UpdateTask   commands.UpdateTaskCommandHandler
	CompleteTask commands.CompleteTaskCommandHandler
	DeleteTask   commands.DeleteTaskCommandHandler
	GetTask      queries.GetTaskQueryHandler
	ListTasks    queries.ListTasksQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createTaskHandler:   h.CreateTask,
		updateTaskHandler:   h.UpdateTask,
		completeTaskHandler: h.CompleteTask,
		deleteTaskHandler:   h.DeleteTask,
		getTaskHandler:      h.GetTask,
		listTasksHandler:    h.ListTasks,
	}
}

// ListTasks handles GET /api/v1/tasks.
func (s *Server) ListTasks(ctx echo.Context, params servers.ListTasksParams) error {
	query := queries.NewListTasksQuery(deref(params.Status), deref(params.RobotId), deref(params.PackageId))

	tasks, err := s.listTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTasks(tasks))
}

// CreateTask handles POST /api/v1/tasks.
func (s *Server) CreateTask(ctx echo.Context) error {
	var body servers.NewTask
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateTaskCommand(createTaskInput(body))
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.createTaskHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	logging.FromContext(reqCtx).InfoContext(reqCtx, "task created",
		"task_id", details.Task.ID().String(),
		"package_id", details.Task.PackageID().String(),
		"robot_id", details.Task.RobotID().String(),
	)
	return ctx.JSON(http.StatusCreated, toTask(details))
}

// GetTask handles GET /api/v1/tasks/{taskId}.
func (s *Server) GetTask(ctx echo.Context, taskID servers.TaskId) error {
	query, err := queries.NewGetTaskQuery(taskID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.getTaskHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTask(details))
}

// UpdateTask handles PUT /api/v1/tasks/{taskId}.
func (s *Server) UpdateTask(ctx echo.Context, taskID servers.TaskId) error {
	var body servers.TaskUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateTaskCommand(taskID, updateTaskInput(body))
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.updateTaskHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTask(details))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskId}.
func (s *Server) DeleteTask(ctx echo.Context, taskID servers.TaskId) error {
	cmd, err := commands.NewDeleteTaskCommand(taskID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteTask handles PATCH /api/v1/tasks/{taskId}/complete.
func (s *Server) CompleteTask(ctx echo.Context, taskID servers.TaskId) error {
	cmd, err := commands.NewCompleteTaskCommand(taskID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.completeTaskHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTask(details))
}

// ListTasksByRobot handles GET /api/v1/tasks/robot/{robotId}.
func (s *Server) ListTasksByRobot(ctx echo.Context, robotID string) error {
	query, err := queries.NewListTasksByRobotQuery(robotID)
	if err != nil {
		return writeError(ctx, err)
	}

	tasks, err := s.listTasksHandler.ByRobot(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTasks(tasks))
}

// ListTasksByPackage handles GET /api/v1/tasks/package/{packageId}.
func (s *Server) ListTasksByPackage(ctx echo.Context, packageID string) error {
	query, err := queries.NewListTasksByPackageQuery(packageID)
	if err != nil {
		return writeError(ctx, err)
	}

	tasks, err := s.listTasksHandler.ByPackage(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTasks(tasks))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
