package commands

import (
	"context"
	"fmt"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
)

// CreateTaskCommandHandler creates a task together with whatever package and
// robot it needs, inside a single unit of work.
//
// Example:
//
//	handler := NewCreateTaskCommandHandler(uowFactory, services.NewReferenceResolver(), nil)
//	details, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("task %s assigned to robot %s", details.Task.ID(), details.Robot.ID())
type CreateTaskCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.ReferenceResolver
	clock      Clock
	newID      func() kernel.ID
}

// NewCreateTaskCommandHandler creates the handler. A nil clock falls back to SystemClock.
func NewCreateTaskCommandHandler(
	uowFactory UoWFactory,
	resolver services.ReferenceResolver,
	clock Clock,
) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		clock:      clockOrSystem(clock),
		newID:      kernel.NewID,
	}
}

// Handle resolves the package, then the robot, inserts the task and reads it
// back joined with both. Any failure rolls the whole unit of work back, so no
// package or robot created on the way survives a failed task insert.
func (h CreateTaskCommandHandler) Handle(ctx context.Context, command CreateTaskCommand) (ports.TaskDetails, error) {
	if err := command.Validate(); err != nil {
		return ports.TaskDetails{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.TaskDetails{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := h.resolver.ResolvePackage(ctx, uow.PackageRepository(), command.Package())
	if err != nil {
		return ports.TaskDetails{}, fmt.Errorf("resolve package: %w", err)
	}

	bot, err := h.resolver.ResolveRobot(ctx, uow.RobotRepository(), command.Robot())
	if err != nil {
		return ports.TaskDetails{}, fmt.Errorf("resolve robot: %w", err)
	}

	newTask, err := task.NewTask(h.newID(), pkg.ID(), bot.ID(), command.Status(), command.CompletedAt(), h.clock())
	if err != nil {
		return ports.TaskDetails{}, err
	}

	taskRepo := uow.TaskRepository()
	if err = taskRepo.Add(ctx, newTask); err != nil {
		return ports.TaskDetails{}, err
	}

	details, err := taskRepo.GetDetails(ctx, newTask.ID(), ports.IncludeAll)
	if err != nil {
		return ports.TaskDetails{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.TaskDetails{}, err
	}

	return details, nil
}
