// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work keeps a list of entities written during a business
// transaction and coordinates commit or rollback for all of them.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, observer)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.PackageRepository().Add(ctx, pkg); err != nil {
//	    return err
//	}
//	if err := uow.TaskRepository().Add(ctx, t); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction and must not be shared
// between goroutines. Repositories obtained before Begin run on the pool.
package postgres

import (
	"context"

	"fleetdispatch/internal/adapters/out/postgres/packagerepo"
	"fleetdispatch/internal/adapters/out/postgres/robotrepo"
	"fleetdispatch/internal/adapters/out/postgres/taskrepo"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	observer ports.ChangeObserver
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// observer is told about every committed change and may be nil.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, nil)
func NewGormUnitOfWorkFactory(db *gorm.DB, observer ports.ChangeObserver) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, observer: observer}
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		observer: f.observer,
		changes:  make([]ports.Change, 0),
	}
}

// NewTaskReader returns the non-transactional task read side used by queries.
func NewTaskReader(db *gorm.DB) ports.TaskReader {
	return taskrepo.NewGormTaskRepository(db, nil)
}

// GormUnitOfWork coordinates one database transaction and tracks the changes
// made through its repositories. Tracked changes are handed to the observer
// after a successful commit and dropped on rollback.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	observer ports.ChangeObserver
	changes  []ports.Change
}

// Begin starts the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStoreError("begin", tx.Error)
	}

	uow.tx = tx
	uow.changes = uow.changes[:0]
	return nil
}

// Commit makes the transaction's writes permanent.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.changes = uow.changes[:0]
		return errs.NewStoreError("commit", err)
	}

	if uow.observer != nil && len(uow.changes) > 0 {
		committed := make([]ports.Change, len(uow.changes))
		copy(committed, uow.changes)
		uow.observer(ctx, committed)
	}
	uow.changes = uow.changes[:0]
	return nil
}

// Rollback discards the transaction's writes.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which is
// the case for the deferred rollback after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.changes = uow.changes[:0]
	return err
}

// PackageRepository returns a package repository bound to the open transaction,
// or to the pool when none is open.
func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return packagerepo.NewGormPackageRepository(uow.conn(), uow)
}

// RobotRepository returns a robot repository bound like PackageRepository.
func (uow *GormUnitOfWork) RobotRepository() ports.RobotRepository {
	return robotrepo.NewGormRobotRepository(uow.conn(), uow)
}

// TaskRepository returns a task repository bound like PackageRepository.
func (uow *GormUnitOfWork) TaskRepository() ports.TaskRepository {
	return taskrepo.NewGormTaskRepository(uow.conn(), uow)
}

// TrackChange registers a write made inside this unit of work. Repositories
// call it after each successful insert, update or delete.
func (uow *GormUnitOfWork) TrackChange(kind string, id kernel.ID, op ports.ChangeOp) {
	uow.changes = append(uow.changes, ports.Change{Kind: kind, ID: id, Op: op})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
