package memory

import (
	"context"
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

// ErrForeignKeyViolation is wrapped when a task points at a missing package or robot.
var ErrForeignKeyViolation = errors.New("foreign key violation")

// Store is the committed state plus the lock serializing transactions.
// The zero value is not usable; use NewStore.
//
// Example:
//
//	store := memory.NewStore(nil)
//	uow := store.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
type Store struct {
	sem      chan struct{}
	state    state
	observer ports.ChangeObserver
	now      func() time.Time
}

// NewStore creates an empty store. observer is told about committed changes and may be nil.
func NewStore(observer ports.ChangeObserver) *Store {
	return &Store{
		sem:      make(chan struct{}, 1),
		state:    newState(),
		observer: observer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create returns a new unit of work over the store.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// TaskReader returns the read side used by query handlers. Every call sees
// the last committed state.
func (s *Store) TaskReader() ports.TaskReader {
	return &taskRepository{access: s.autocommit}
}

// CountByStatus implements ports.TaskStatsReader.
func (s *Store) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	err := s.autocommit(ctx, func(st *state) error {
		for _, row := range st.tasks {
			counts[row.status]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return errs.NewStoreError("acquire store lock", ctx.Err())
	}
}

func (s *Store) release() {
	<-s.sem
}

// autocommit runs fn directly on the committed state under the lock.
func (s *Store) autocommit(ctx context.Context, fn func(st *state) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	return fn(&s.state)
}

// accessFunc hands a repository the state it should work on.
type accessFunc func(ctx context.Context, fn func(st *state) error) error

// UnitOfWork implements ports.UnitOfWork on a Store.
type UnitOfWork struct {
	store   *Store
	tx      *state
	changes []ports.Change
}

// Begin takes the store lock and snapshots the committed state. It blocks
// while another transaction is open and fails when ctx ends first.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}
	if err := u.store.acquire(ctx); err != nil {
		return err
	}

	snapshot := u.store.state.clone()
	u.tx = &snapshot
	u.changes = nil
	return nil
}

// Commit publishes the snapshot as the new committed state.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return errs.NewStoreError("commit", errors.New("no open transaction"))
	}

	u.store.state = *u.tx
	u.tx = nil
	u.store.release()

	changes := u.changes
	u.changes = nil
	if u.store.observer != nil && len(changes) > 0 {
		u.store.observer(ctx, changes)
	}
	return nil
}

// Rollback drops the snapshot. It is a no-op error after Commit, like the
// database-backed unit of work.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return errs.NewStoreError("rollback", errors.New("no open transaction"))
	}

	u.tx = nil
	u.changes = nil
	u.store.release()
	return nil
}

func (u *UnitOfWork) PackageRepository() ports.PackageRepository {
	return &packageRepository{access: u.access, track: u.track, now: u.store.now}
}

func (u *UnitOfWork) RobotRepository() ports.RobotRepository {
	return &robotRepository{access: u.access, track: u.track, now: u.store.now}
}

func (u *UnitOfWork) TaskRepository() ports.TaskRepository {
	return &taskRepository{access: u.access, track: u.track, now: u.store.now}
}

// access uses the open transaction, or falls back to autocommit.
func (u *UnitOfWork) access(ctx context.Context, fn func(st *state) error) error {
	if u.tx != nil {
		if err := ctx.Err(); err != nil {
			return errs.NewStoreError("access", err)
		}
		return fn(u.tx)
	}
	return u.store.autocommit(ctx, fn)
}

func (u *UnitOfWork) track(kind string, id kernel.ID, op ports.ChangeOp) {
	if u.tx != nil {
		u.changes = append(u.changes, ports.Change{Kind: kind, ID: id, Op: op})
	}
}
