package commands

import (
	"errors"
	"strings"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/pkg/errs"
	"fleetdispatch/internal/pkg/guard"
)

var ErrCreateTaskCommandIsNotConstructed = errors.New(
	"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
)

// PackageInput is the inline package payload as received from a caller.
// Pointers distinguish a missing field from a zero value.
type PackageInput struct {
	QRCode   *string
	Size     *float64
	Weight   *float64
	Location *string
	Status   *string
	ShelfID  *string
}

// RobotInput is the inline robot payload as received from a caller.
// Battery is a pointer so that 0 stays distinct from missing.
type RobotInput struct {
	Name           *string
	Status         *string
	Battery        *int
	Location       *string
	LastMaintained *time.Time
}

// CreateTaskInput is the raw creation request.
type CreateTaskInput struct {
	PackageID   *string
	PackageData *PackageInput
	RobotID     *string
	RobotData   *RobotInput
	Status      string
	CompletedAt *time.Time
}

// CreateTaskCommand is a validated request to create a task linking a package to a robot.
//
// Example:
//
//	qr, size, weight, loc, st := "QR1", 1.0, 2.0, "A", "PENDING"
//	cmd, err := NewCreateTaskCommand(CreateTaskInput{
//	    PackageData: &PackageInput{QRCode: &qr, Size: &size, Weight: &weight, Location: &loc, Status: &st},
//	    RobotID:     &robotID,
//	    Status:      "ASSIGNED",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid task request: %w", err)
//	}
//
//	details, err := handler.Handle(ctx, cmd)
type CreateTaskCommand struct { //nolint:recvcheck //using for validation
	pkg         kernel.Reference[parcel.Data]
	robot       kernel.Reference[robot.Data]
	status      task.Status
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewCreateTaskCommand checks the structural preconditions of a creation request:
//   - packageId or packageData, and robotId or robotData, must be provided
//   - inline data must carry every required field (zero values count as present)
//   - status must not be blank
//   - completedAt is only accepted together with status COMPLETED
//
// Every failing rule is reported as an *errs.ValidationError; all of them are
// joined into the returned error. Nothing touches the store.
func NewCreateTaskCommand(in CreateTaskInput) (CreateTaskCommand, error) {
	cmd := CreateTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackage(in.PackageID, in.PackageData),
		cmd.setRobot(in.RobotID, in.RobotData),
		cmd.setStatus(in.Status, in.CompletedAt),
	); err != nil {
		return CreateTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

// Package returns the package reference.
func (c CreateTaskCommand) Package() kernel.Reference[parcel.Data] {
	return c.pkg
}

// Robot returns the robot reference.
func (c CreateTaskCommand) Robot() kernel.Reference[robot.Data] {
	return c.robot
}

func (c CreateTaskCommand) Status() task.Status {
	return c.status
}

// CompletedAt returns the requested completion time, nil by default.
func (c CreateTaskCommand) CompletedAt() *time.Time {
	return c.completedAt
}

func (c *CreateTaskCommand) setPackage(rawID *string, in *PackageInput) error {
	id, hasID := optionalID(rawID)
	if !hasID && in == nil {
		return errs.NewValidationError("packageId", RuleEitherOr("packageId", "packageData"))
	}

	if in == nil {
		c.pkg = kernel.ByID[parcel.Data](id)
		return nil
	}

	data, err := in.toData()
	if err != nil {
		return err
	}

	if hasID {
		c.pkg = kernel.ByIDOrCreate(id, data)
	} else {
		c.pkg = kernel.Inline(data)
	}
	return nil
}

func (c *CreateTaskCommand) setRobot(rawID *string, in *RobotInput) error {
	id, hasID := optionalID(rawID)
	if !hasID && in == nil {
		return errs.NewValidationError("robotId", RuleEitherOr("robotId", "robotData"))
	}

	if in == nil {
		c.robot = kernel.ByID[robot.Data](id)
		return nil
	}

	data, err := in.toData()
	if err != nil {
		return err
	}

	if hasID {
		c.robot = kernel.ByIDOrCreate(id, data)
	} else {
		c.robot = kernel.Inline(data)
	}
	return nil
}

func (c *CreateTaskCommand) setStatus(raw string, completedAt *time.Time) error {
	status, err := task.NewStatus(raw)
	if err != nil {
		return errs.NewValidationErrorWithCause("status", RuleRequired, err)
	}
	if completedAt != nil && !status.IsCompleted() {
		return errs.NewValidationErrorWithCause("completedAt", RuleCompletedAtNeedsState, task.ErrCompletedAtWithoutCompletion)
	}

	c.status = status
	if completedAt != nil {
		ts := *completedAt
		c.completedAt = &ts
	}
	return nil
}

func (in *PackageInput) toData() (parcel.Data, error) {
	var missing []error
	if in.QRCode == nil {
		missing = append(missing, requiredField("packageData.qrCode"))
	}
	if in.Size == nil {
		missing = append(missing, requiredField("packageData.size"))
	}
	if in.Weight == nil {
		missing = append(missing, requiredField("packageData.weight"))
	}
	if in.Location == nil {
		missing = append(missing, requiredField("packageData.location"))
	}
	switch {
	case in.Status == nil:
		missing = append(missing, requiredField("packageData.status"))
	case strings.TrimSpace(*in.Status) == "":
		missing = append(missing, errs.NewValidationError("packageData.status", RuleNotBlank))
	}
	if len(missing) > 0 {
		return parcel.Data{}, errors.Join(missing...)
	}

	return parcel.Data{
		QRCode:   *in.QRCode,
		Size:     *in.Size,
		Weight:   *in.Weight,
		Location: *in.Location,
		Status:   *in.Status,
		ShelfID:  in.ShelfID,
	}, nil
}

func (in *RobotInput) toData() (robot.Data, error) {
	var missing []error
	if in.Name == nil {
		missing = append(missing, requiredField("robotData.name"))
	}
	if in.Status == nil {
		missing = append(missing, requiredField("robotData.status"))
	}
	if in.Battery == nil {
		missing = append(missing, requiredField("robotData.battery"))
	}
	if in.Location == nil {
		missing = append(missing, requiredField("robotData.location"))
	}
	if in.LastMaintained == nil {
		missing = append(missing, requiredField("robotData.lastMaintained"))
	}
	if len(missing) > 0 {
		return robot.Data{}, errors.Join(missing...)
	}

	return robot.Data{
		Name:           *in.Name,
		Status:         *in.Status,
		Battery:        *in.Battery,
		Location:       *in.Location,
		LastMaintained: *in.LastMaintained,
	}, nil
}
