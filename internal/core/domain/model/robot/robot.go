package robot

import (
	"errors"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
)

// Kind names the entity in errors and logs.
const Kind = "Robot"

var ErrRobotIsNotConstructed = errors.New("Robot must be created via NewRobot constructor")

// Data is the inline payload describing a robot. All fields are mandatory;
// a Battery of 0 is a valid reading.
type Data struct {
	Name           string
	Status         string
	Battery        int
	Location       string
	LastMaintained time.Time
}

// Robot is a delivery robot known to the dispatch system.
type Robot struct {
	id             kernel.ID
	name           string
	status         string
	battery        int
	location       string
	lastMaintained time.Time

	isConstructed bool
}

// NewRobot builds a Robot from an identifier and its data.
//
// Example:
//
//	r, err := robot.NewRobot(kernel.NewID(), robot.Data{
//	    Name: "Bot1", Status: "IDLE", Battery: 80, Location: "Dock", LastMaintained: time.Now(),
//	})
func NewRobot(id kernel.ID, data Data) (*Robot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Robot{
		id:             id,
		name:           data.Name,
		status:         data.Status,
		battery:        data.Battery,
		location:       data.Location,
		lastMaintained: data.LastMaintained,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Robot was created through NewRobot.
func (r *Robot) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRobotIsNotConstructed
	}
	return nil
}

func (r *Robot) ID() kernel.ID             { return r.id }
func (r *Robot) Name() string              { return r.name }
func (r *Robot) Status() string            { return r.status }
func (r *Robot) Battery() int              { return r.battery }
func (r *Robot) Location() string          { return r.location }
func (r *Robot) LastMaintained() time.Time { return r.lastMaintained }

// Data returns the robot fields as an inline payload.
func (r *Robot) Data() Data {
	return Data{
		Name:           r.name,
		Status:         r.status,
		Battery:        r.battery,
		Location:       r.location,
		LastMaintained: r.lastMaintained,
	}
}
