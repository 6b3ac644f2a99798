// Package robotrepo persists robots through GORM.
package robotrepo

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/robot"
)

// RobotDTO is the row shape of the robots table.
type RobotDTO struct {
	ID             string    `gorm:"type:text;primaryKey"`
	Name           string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:text;not null"`
	Battery        int       `gorm:"type:int;not null"`
	Location       string    `gorm:"type:text;not null"`
	LastMaintained time.Time `gorm:"column:last_maintained;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (RobotDTO) TableName() string {
	return "robots"
}

// FromDomain maps a robot to its row.
func FromDomain(r *robot.Robot) RobotDTO {
	return RobotDTO{
		ID:             r.ID().String(),
		Name:           r.Name(),
		Status:         r.Status(),
		Battery:        r.Battery(),
		Location:       r.Location(),
		LastMaintained: r.LastMaintained(),
	}
}

// ToDomain rebuilds a robot from its row.
func ToDomain(dto RobotDTO) (*robot.Robot, error) {
	id, err := kernel.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}

	return robot.NewRobot(id, robot.Data{
		Name:           dto.Name,
		Status:         dto.Status,
		Battery:        dto.Battery,
		Location:       dto.Location,
		LastMaintained: dto.LastMaintained,
	})
}
