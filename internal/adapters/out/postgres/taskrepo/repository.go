package taskrepo

import (
	"context"
	"errors"
	"time"

	"fleetdispatch/internal/adapters/out/postgres/pgerr"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const newestFirst = "tasks.created_at DESC, tasks.id DESC"

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker changeTracker
	now     func() time.Time
}

type changeTracker interface {
	TrackChange(kind string, id kernel.ID, op ports.ChangeOp)
}

// NewGormTaskRepository creates a new GORM task repository. tracker may be nil,
// which is how the read-only side for query handlers is built.
func NewGormTaskRepository(db *gorm.DB, tracker changeTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Add inserts a task. Linked entities are never written through it.
func (r *GormTaskRepository) Add(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	now := r.now()
	dto.CreatedAt, dto.UpdatedAt = now, now

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add task", err)
	}

	r.track(t.ID(), ports.ChangeCreated)
	return nil
}

// Update overwrites the mutable columns of an existing task.
func (r *GormTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)

	// A map is used so that a cleared completed_at is written as NULL.
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"package_id":   dto.PackageID,
			"robot_id":     dto.RobotID,
			"status":       dto.Status,
			"completed_at": dto.CompletedAt,
			"updated_at":   r.now(),
		})
	if result.Error != nil {
		return pgerr.Wrap("update task", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause(task.Kind, dto.ID, gorm.ErrRecordNotFound)
	}

	r.track(t.ID(), ports.ChangeUpdated)
	return nil
}

// Delete removes a task row; packages and robots are left alone.
func (r *GormTaskRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TaskDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return pgerr.Wrap("delete task", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(task.Kind, id.String())
	}

	r.track(id, ports.ChangeDeleted)
	return nil
}

// Get retrieves a bare task by id.
func (r *GormTaskRepository) Get(ctx context.Context, id kernel.ID) (*task.Task, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a task with SELECT ... FOR UPDATE. The lock is held
// until the surrounding transaction ends, so it only makes sense inside one.
func (r *GormTaskRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*task.Task, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetDetails retrieves a task with the requested associations preloaded.
func (r *GormTaskRepository) GetDetails(
	ctx context.Context,
	id kernel.ID,
	include ports.Include,
) (ports.TaskDetails, error) {
	if err := id.Validate(); err != nil {
		return ports.TaskDetails{}, err
	}

	var dto TaskDTO
	err := preload(r.db.WithContext(ctx), include).First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.TaskDetails{}, errs.NewObjectNotFoundError(task.Kind, id.String())
		}
		return ports.TaskDetails{}, pgerr.Wrap("get task", err)
	}

	return toDetails(dto)
}

// List returns the tasks matching filter, newest first.
//
// Example:
//
//	tasks, err := repo.List(ctx, ports.TaskFilter{
//	    Status:  "ASSIGNED",
//	    RobotID: robotID,
//	    Include: ports.IncludePackage,
//	})
func (r *GormTaskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]ports.TaskDetails, error) {
	query := preload(r.db.WithContext(ctx), filter.Include)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if !filter.RobotID.IsZero() {
		query = query.Where("robot_id = ?", filter.RobotID.String())
	}
	if !filter.PackageID.IsZero() {
		query = query.Where("package_id = ?", filter.PackageID.String())
	}

	var dtos []TaskDTO
	if err := query.Order(newestFirst).Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap("list tasks", err)
	}

	tasks := make([]ports.TaskDetails, 0, len(dtos))
	for _, dto := range dtos {
		details, err := toDetails(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, details)
	}

	return tasks, nil
}

func (r *GormTaskRepository) get(ctx context.Context, db *gorm.DB, id kernel.ID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(task.Kind, id.String())
		}
		return nil, pgerr.Wrap("get task", err)
	}

	return toDomain(dto)
}

func (r *GormTaskRepository) track(id kernel.ID, op ports.ChangeOp) {
	if r.tracker != nil {
		r.tracker.TrackChange(task.Kind, id, op)
	}
}

func preload(db *gorm.DB, include ports.Include) *gorm.DB {
	if include.Has(ports.IncludePackage) {
		db = db.Preload("Package")
	}
	if include.Has(ports.IncludeRobot) {
		db = db.Preload("Robot")
	}
	return db
}
