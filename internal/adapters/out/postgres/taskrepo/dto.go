// Package taskrepo persists tasks through GORM and serves the task read side.
package taskrepo

import (
	"time"

	"fleetdispatch/internal/adapters/out/postgres/packagerepo"
	"fleetdispatch/internal/adapters/out/postgres/robotrepo"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/core/ports"
)

// TaskDTO is the row shape of the tasks table. Package and Robot are only
// filled when preloaded and are never written through this struct.
type TaskDTO struct {
	ID          string     `gorm:"type:text;primaryKey"`
	PackageID   string     `gorm:"column:package_id;type:text;not null;index"`
	RobotID     string     `gorm:"column:robot_id;type:text;not null;index"`
	Status      string     `gorm:"type:text;not null;index"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	UpdatedAt   time.Time  `gorm:"not null"`

	Package *packagerepo.PackageDTO `gorm:"foreignKey:PackageID;references:ID;constraint:OnDelete:RESTRICT"`
	Robot   *robotrepo.RobotDTO     `gorm:"foreignKey:RobotID;references:ID;constraint:OnDelete:RESTRICT"`
}

func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(t *task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID().String(),
		PackageID:   t.PackageID().String(),
		RobotID:     t.RobotID().String(),
		Status:      t.Status().String(),
		CompletedAt: t.CompletedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.ParseID(dto.PackageID)
	if err != nil {
		return nil, err
	}
	robotID, err := kernel.ParseID(dto.RobotID)
	if err != nil {
		return nil, err
	}

	return task.RestoreTask(id, packageID, robotID, task.Status(dto.Status), dto.CompletedAt, dto.CreatedAt, dto.UpdatedAt)
}

// toDetails maps a row and whatever associations were preloaded.
func toDetails(dto TaskDTO) (ports.TaskDetails, error) {
	t, err := toDomain(dto)
	if err != nil {
		return ports.TaskDetails{}, err
	}

	details := ports.TaskDetails{Task: t}
	if dto.Package != nil {
		if details.Package, err = packagerepo.ToDomain(*dto.Package); err != nil {
			return ports.TaskDetails{}, err
		}
	}
	if dto.Robot != nil {
		if details.Robot, err = robotrepo.ToDomain(*dto.Robot); err != nil {
			return ports.TaskDetails{}, err
		}
	}
	return details, nil
}
