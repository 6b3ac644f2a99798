// Package memory provides an in-process implementation of the store ports.
// Transactions work on a copy of the committed state that replaces it on
// commit, and only one transaction runs at a time.
package memory

import (
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/domain/model/task"
)

type packageRow struct {
	data      parcel.Data
	createdAt time.Time
}

type robotRow struct {
	data      robot.Data
	createdAt time.Time
}

type taskRow struct {
	packageID   string
	robotID     string
	status      string
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
	seq         uint64
}

type state struct {
	packages map[string]packageRow
	robots   map[string]robotRow
	tasks    map[string]taskRow
	seq      uint64
}

func newState() state {
	return state{
		packages: map[string]packageRow{},
		robots:   map[string]robotRow{},
		tasks:    map[string]taskRow{},
	}
}

// clone returns a copy sharing nothing mutable with s.
func (s state) clone() state {
	c := state{
		packages: make(map[string]packageRow, len(s.packages)),
		robots:   make(map[string]robotRow, len(s.robots)),
		tasks:    make(map[string]taskRow, len(s.tasks)),
		seq:      s.seq,
	}
	for k, v := range s.packages {
		v.data.ShelfID = copyString(v.data.ShelfID)
		c.packages[k] = v
	}
	for k, v := range s.robots {
		c.robots[k] = v
	}
	for k, v := range s.tasks {
		v.completedAt = copyTime(v.completedAt)
		c.tasks[k] = v
	}
	return c
}

func (r packageRow) toDomain(id string) (*parcel.Package, error) {
	pid, err := kernel.ParseID(id)
	if err != nil {
		return nil, err
	}
	data := r.data
	data.ShelfID = copyString(data.ShelfID)
	return parcel.NewPackage(pid, data)
}

func (r robotRow) toDomain(id string) (*robot.Robot, error) {
	rid, err := kernel.ParseID(id)
	if err != nil {
		return nil, err
	}
	return robot.NewRobot(rid, r.data)
}

func (r taskRow) toDomain(id string) (*task.Task, error) {
	tid, err := kernel.ParseID(id)
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.ParseID(r.packageID)
	if err != nil {
		return nil, err
	}
	robotID, err := kernel.ParseID(r.robotID)
	if err != nil {
		return nil, err
	}
	return task.RestoreTask(tid, packageID, robotID, task.Status(r.status), r.completedAt, r.createdAt, r.updatedAt)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
