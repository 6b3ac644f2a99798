package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/robot"
)

// RobotRepository persists robots. Robots are only ever created and read.
type RobotRepository interface {
	// Add persists a new robot under its id.
	Add(ctx context.Context, r *robot.Robot) error

	// Get returns the robot or an *errs.ObjectNotFoundError with kind "Robot".
	Get(ctx context.Context, id kernel.ID) (*robot.Robot, error)
}
