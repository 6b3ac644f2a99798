package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"
)

type trackFunc func(kind string, id kernel.ID, op ports.ChangeOp)

func (f trackFunc) call(kind string, id kernel.ID, op ports.ChangeOp) {
	if f != nil {
		f(kind, id, op)
	}
}

func alreadyExists(op, what string) error {
	return errs.NewStoreError(op, fmt.Errorf("%w: %s", errs.ErrAlreadyExists, what))
}

type packageRepository struct {
	access accessFunc
	track  trackFunc
	now    func() time.Time
}

func (r *packageRepository) Add(ctx context.Context, pkg *parcel.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	id := pkg.ID().String()
	err := r.access(ctx, func(st *state) error {
		if _, ok := st.packages[id]; ok {
			return alreadyExists("add package", "package "+id)
		}
		for _, existing := range st.packages {
			if existing.data.QRCode == pkg.QRCode() {
				return alreadyExists("add package", "qr code "+pkg.QRCode())
			}
		}
		data := pkg.Data()
		data.ShelfID = copyString(data.ShelfID)
		st.packages[id] = packageRow{data: data, createdAt: r.now()}
		return nil
	})
	if err != nil {
		return err
	}

	r.track.call(parcel.Kind, pkg.ID(), ports.ChangeCreated)
	return nil
}

func (r *packageRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *parcel.Package
	err := r.access(ctx, func(st *state) error {
		row, ok := st.packages[id.String()]
		if !ok {
			return errs.NewObjectNotFoundError(parcel.Kind, id.String())
		}
		var err error
		found, err = row.toDomain(id.String())
		return err
	})
	return found, err
}

type robotRepository struct {
	access accessFunc
	track  trackFunc
	now    func() time.Time
}

func (r *robotRepository) Add(ctx context.Context, bot *robot.Robot) error {
	if err := bot.Validate(); err != nil {
		return err
	}

	id := bot.ID().String()
	err := r.access(ctx, func(st *state) error {
		if _, ok := st.robots[id]; ok {
			return alreadyExists("add robot", "robot "+id)
		}
		st.robots[id] = robotRow{data: bot.Data(), createdAt: r.now()}
		return nil
	})
	if err != nil {
		return err
	}

	r.track.call(robot.Kind, bot.ID(), ports.ChangeCreated)
	return nil
}

func (r *robotRepository) Get(ctx context.Context, id kernel.ID) (*robot.Robot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *robot.Robot
	err := r.access(ctx, func(st *state) error {
		row, ok := st.robots[id.String()]
		if !ok {
			return errs.NewObjectNotFoundError(robot.Kind, id.String())
		}
		var err error
		found, err = row.toDomain(id.String())
		return err
	})
	return found, err
}

type taskRepository struct {
	access accessFunc
	track  trackFunc
	now    func() time.Time
}

func (r *taskRepository) clock() time.Time {
	if r.now == nil {
		return time.Now().UTC()
	}
	return r.now()
}

func (r *taskRepository) Add(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	id := t.ID().String()
	err := r.access(ctx, func(st *state) error {
		if _, ok := st.tasks[id]; ok {
			return alreadyExists("add task", "task "+id)
		}
		if err := checkReferences(st, "add task", t); err != nil {
			return err
		}

		now := r.clock()
		st.seq++
		st.tasks[id] = taskRow{
			packageID:   t.PackageID().String(),
			robotID:     t.RobotID().String(),
			status:      t.Status().String(),
			completedAt: t.CompletedAt(),
			createdAt:   now,
			updatedAt:   now,
			seq:         st.seq,
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.track.call(task.Kind, t.ID(), ports.ChangeCreated)
	return nil
}

func (r *taskRepository) Update(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	id := t.ID().String()
	err := r.access(ctx, func(st *state) error {
		row, ok := st.tasks[id]
		if !ok {
			return errs.NewObjectNotFoundError(task.Kind, id)
		}
		if err := checkReferences(st, "update task", t); err != nil {
			return err
		}

		row.packageID = t.PackageID().String()
		row.robotID = t.RobotID().String()
		row.status = t.Status().String()
		row.completedAt = t.CompletedAt()
		row.updatedAt = r.clock()
		st.tasks[id] = row
		return nil
	})
	if err != nil {
		return err
	}

	r.track.call(task.Kind, t.ID(), ports.ChangeUpdated)
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.access(ctx, func(st *state) error {
		if _, ok := st.tasks[id.String()]; !ok {
			return errs.NewObjectNotFoundError(task.Kind, id.String())
		}
		delete(st.tasks, id.String())
		return nil
	})
	if err != nil {
		return err
	}

	r.track.call(task.Kind, id, ports.ChangeDeleted)
	return nil
}

func (r *taskRepository) Get(ctx context.Context, id kernel.ID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *task.Task
	err := r.access(ctx, func(st *state) error {
		row, ok := st.tasks[id.String()]
		if !ok {
			return errs.NewObjectNotFoundError(task.Kind, id.String())
		}
		var err error
		found, err = row.toDomain(id.String())
		return err
	})
	return found, err
}

// GetForUpdate equals Get: transactions are already serialized by the store lock.
func (r *taskRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*task.Task, error) {
	return r.Get(ctx, id)
}

func (r *taskRepository) GetDetails(ctx context.Context, id kernel.ID, include ports.Include) (ports.TaskDetails, error) {
	if err := id.Validate(); err != nil {
		return ports.TaskDetails{}, err
	}

	var details ports.TaskDetails
	err := r.access(ctx, func(st *state) error {
		row, ok := st.tasks[id.String()]
		if !ok {
			return errs.NewObjectNotFoundError(task.Kind, id.String())
		}
		var err error
		details, err = detailsOf(st, id.String(), row, include)
		return err
	})
	return details, err
}

func (r *taskRepository) List(ctx context.Context, filter ports.TaskFilter) ([]ports.TaskDetails, error) {
	type entry struct {
		id  string
		row taskRow
	}

	var tasks []ports.TaskDetails
	err := r.access(ctx, func(st *state) error {
		matched := make([]entry, 0, len(st.tasks))
		for id, row := range st.tasks {
			if filter.Status != "" && row.status != filter.Status.String() {
				continue
			}
			if !filter.RobotID.IsZero() && row.robotID != filter.RobotID.String() {
				continue
			}
			if !filter.PackageID.IsZero() && row.packageID != filter.PackageID.String() {
				continue
			}
			matched = append(matched, entry{id: id, row: row})
		}

		sort.Slice(matched, func(i, j int) bool {
			a, b := matched[i].row, matched[j].row
			if !a.createdAt.Equal(b.createdAt) {
				return a.createdAt.After(b.createdAt)
			}
			return a.seq > b.seq
		})

		tasks = make([]ports.TaskDetails, 0, len(matched))
		for _, e := range matched {
			details, err := detailsOf(st, e.id, e.row, filter.Include)
			if err != nil {
				return err
			}
			tasks = append(tasks, details)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func checkReferences(st *state, op string, t *task.Task) error {
	if _, ok := st.packages[t.PackageID().String()]; !ok {
		return errs.NewStoreError(op, fmt.Errorf("%w: package %s", ErrForeignKeyViolation, t.PackageID()))
	}
	if _, ok := st.robots[t.RobotID().String()]; !ok {
		return errs.NewStoreError(op, fmt.Errorf("%w: robot %s", ErrForeignKeyViolation, t.RobotID()))
	}
	return nil
}

func detailsOf(st *state, id string, row taskRow, include ports.Include) (ports.TaskDetails, error) {
	t, err := row.toDomain(id)
	if err != nil {
		return ports.TaskDetails{}, err
	}

	details := ports.TaskDetails{Task: t}
	if include.Has(ports.IncludePackage) {
		if pkg, ok := st.packages[row.packageID]; ok {
			if details.Package, err = pkg.toDomain(row.packageID); err != nil {
				return ports.TaskDetails{}, err
			}
		}
	}
	if include.Has(ports.IncludeRobot) {
		if bot, ok := st.robots[row.robotID]; ok {
			if details.Robot, err = bot.toDomain(row.robotID); err != nil {
				return ports.TaskDetails{}, err
			}
		}
	}
	return details, nil
}
