package ports

import (
	"context"

	"fleetdispatch/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks entity changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// PackageRepository returns a repository bound to the current transaction.
	PackageRepository() PackageRepository

	// RobotRepository returns a repository bound to the current transaction.
	RobotRepository() RobotRepository

	// TaskRepository returns a repository bound to the current transaction.
	TaskRepository() TaskRepository
}

// ChangeOp is the kind of write recorded for an entity.
type ChangeOp string

const (
	ChangeCreated ChangeOp = "created"
	ChangeUpdated ChangeOp = "updated"
	ChangeDeleted ChangeOp = "deleted"
)

// Change records one write performed inside a unit of work.
type Change struct {
	Kind string
	ID   kernel.ID
	Op   ChangeOp
}

// ChangeObserver receives the changes of a unit of work once it has committed.
// Rolled back changes are never reported.
type ChangeObserver func(ctx context.Context, changes []Change)
