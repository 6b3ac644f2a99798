package robotrepo

import (
	"context"
	"errors"

	"fleetdispatch/internal/adapters/out/postgres/pgerr"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRobotRepository implements ports.RobotRepository using GORM.
type GormRobotRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

type changeTracker interface {
	TrackChange(kind string, id kernel.ID, op ports.ChangeOp)
}

// NewGormRobotRepository creates a new GORM robot repository. tracker may be nil.
func NewGormRobotRepository(db *gorm.DB, tracker changeTracker) *GormRobotRepository {
	return &GormRobotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new robot.
func (r *GormRobotRepository) Add(ctx context.Context, aggregate *robot.Robot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("add robot", err)
	}

	if r.tracker != nil {
		r.tracker.TrackChange(robot.Kind, aggregate.ID(), ports.ChangeCreated)
	}
	return nil
}

// Get retrieves a robot by id.
func (r *GormRobotRepository) Get(ctx context.Context, id kernel.ID) (*robot.Robot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RobotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(robot.Kind, id.String())
		}
		return nil, pgerr.Wrap("get robot", err)
	}

	return ToDomain(dto)
}
