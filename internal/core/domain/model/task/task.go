package task

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
)

// Kind names the aggregate in errors and logs.
const Kind = "Task"

// Task links a package to a robot and tracks the assignment's status.
//
// Task follows these invariants:
//   - id, packageID and robotID are valid identifiers
//   - status is not blank
//   - completedAt != nil if and only if status is COMPLETED
//   - createdAt/updatedAt are owned by the store and zero until persisted
type Task struct {
	id          kernel.ID
	packageID   kernel.ID
	robotID     kernel.ID
	status      Status
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewTask creates a task for the given package and robot.
//
// completedAt is optional. When status is COMPLETED and completedAt is nil the
// task is stamped with now; a completedAt with any other status is rejected
// with ErrCompletedAtWithoutCompletion.
//
// Example:
//
//	t, err := task.NewTask(kernel.NewID(), pkg.ID(), bot.ID(), "ASSIGNED", nil, time.Now())
//	if err != nil {
//	    return err
//	}
func NewTask(
	id, packageID, robotID kernel.ID,
	status Status,
	completedAt *time.Time,
	now time.Time,
) (*Task, error) {
	t := &Task{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setPackageID(packageID),
		t.setRobotID(robotID),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	resolved, err := completionTimestamp(status, completedAt, completedAt != nil, now)
	if err != nil {
		return nil, err
	}
	t.completedAt = resolved

	return t, nil
}

// RestoreTask rehydrates a persisted task. Timestamps are taken as stored.
func RestoreTask(
	id, packageID, robotID kernel.ID,
	status Status,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	t := &Task{
		completedAt:   copyTime(completedAt),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setPackageID(packageID),
		t.setRobotID(robotID),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Task was created through a constructor.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.ID        { return t.id }
func (t *Task) PackageID() kernel.ID { return t.packageID }
func (t *Task) RobotID() kernel.ID   { return t.robotID }
func (t *Task) Status() Status       { return t.status }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// CompletedAt returns a copy of the completion timestamp, nil while not completed.
func (t *Task) CompletedAt() *time.Time {
	return copyTime(t.completedAt)
}

// IsCompleted reports whether the task reached COMPLETED.
func (t *Task) IsCompleted() bool {
	return t.status.IsCompleted()
}

// Complete moves the task to COMPLETED and stamps completedAt with now.
//
// Returns *AlreadyCompletedError (matching ErrAlreadyCompleted) when the task
// is already completed; the existing completedAt is preserved in that case.
func (t *Task) Complete(now time.Time) error {
	if t.status.IsCompleted() {
		return &AlreadyCompletedError{TaskID: t.id}
	}

	t.status = Completed
	t.completedAt = &now
	return nil
}

// Changes is an administrative overwrite. Nil fields are left untouched.
type Changes struct {
	PackageID   *kernel.ID
	RobotID     *kernel.ID
	Status      *Status
	CompletedAt *time.Time
}

// IsEmpty reports whether no field is set.
func (c Changes) IsEmpty() bool {
	return c.PackageID == nil && c.RobotID == nil && c.Status == nil && c.CompletedAt == nil
}

// Apply overwrites the fields present in ch. There is no transition guard:
// any status may replace any other. Afterwards the completion invariant is
// re-established: a COMPLETED task without completedAt is stamped with now, a
// non-completed task loses its completedAt, and an explicit completedAt on a
// non-completed status is rejected. The task is unchanged when Apply fails.
func (t *Task) Apply(ch Changes, now time.Time) error {
	next := *t

	if ch.PackageID != nil {
		if err := next.setPackageID(*ch.PackageID); err != nil {
			return err
		}
	}
	if ch.RobotID != nil {
		if err := next.setRobotID(*ch.RobotID); err != nil {
			return err
		}
	}
	if ch.Status != nil {
		if err := next.setStatus(*ch.Status); err != nil {
			return err
		}
	}

	completedAt := next.completedAt
	if ch.CompletedAt != nil {
		completedAt = ch.CompletedAt
	}
	resolved, err := completionTimestamp(next.status, completedAt, ch.CompletedAt != nil, now)
	if err != nil {
		return err
	}
	next.completedAt = resolved

	*t = next
	return nil
}

// completionTimestamp decides completedAt for a given status. explicit tells
// whether candidate was supplied by the caller rather than carried over.
func completionTimestamp(status Status, candidate *time.Time, explicit bool, now time.Time) (*time.Time, error) {
	if !status.IsCompleted() {
		if explicit {
			return nil, ErrCompletedAtWithoutCompletion
		}
		return nil, nil
	}

	if candidate != nil {
		return copyTime(candidate), nil
	}
	return &now, nil
}

func (t *Task) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setPackageID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.packageID = id
	return nil
}

func (t *Task) setRobotID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.robotID = id
	return nil
}

func (t *Task) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func copyTime(ts *time.Time) *time.Time {
	if ts == nil {
		return nil
	}
	v := *ts
	return &v
}
