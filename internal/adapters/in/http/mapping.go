package http

import (
	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/generated/servers"
)

func createTaskInput(body servers.NewTask) commands.CreateTaskInput {
	in := commands.CreateTaskInput{
		PackageID:   body.PackageId,
		RobotID:     body.RobotId,
		Status:      body.Status,
		CompletedAt: body.CompletedAt,
	}

	if p := body.PackageData; p != nil {
		in.PackageData = &commands.PackageInput{
			QRCode:   p.QrCode,
			Size:     p.Size,
			Weight:   p.Weight,
			Location: p.Location,
			Status:   p.Status,
			ShelfID:  p.ShelfId,
		}
	}

	if r := body.RobotData; r != nil {
		in.RobotData = &commands.RobotInput{
			Name:           r.Name,
			Status:         r.Status,
			Battery:        r.Battery,
			Location:       r.Location,
			LastMaintained: r.LastMaintained,
		}
	}

	return in
}

func updateTaskInput(body servers.TaskUpdate) commands.UpdateTaskInput {
	return commands.UpdateTaskInput{
		PackageID:   body.PackageId,
		RobotID:     body.RobotId,
		Status:      body.Status,
		CompletedAt: body.CompletedAt,
	}
}

func toTask(details ports.TaskDetails) servers.Task {
	t := details.Task
	out := servers.Task{
		Id:          t.ID().String(),
		PackageId:   t.PackageID().String(),
		RobotId:     t.RobotID().String(),
		Status:      t.Status().String(),
		CompletedAt: t.CompletedAt(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}

	if details.Package != nil {
		p := toPackage(details.Package)
		out.Package = &p
	}
	if details.Robot != nil {
		r := toRobot(details.Robot)
		out.Robot = &r
	}
	return out
}

func toTasks(list []ports.TaskDetails) []servers.Task {
	out := make([]servers.Task, len(list))
	for i, details := range list {
		out[i] = toTask(details)
	}
	return out
}

func toPackage(p *parcel.Package) servers.Package {
	return servers.Package{
		Id:       p.ID().String(),
		QrCode:   p.QRCode(),
		Size:     p.Size(),
		Weight:   p.Weight(),
		Location: p.Location(),
		Status:   p.Status(),
		ShelfId:  p.ShelfID(),
	}
}

func toRobot(r *robot.Robot) servers.Robot {
	return servers.Robot{
		Id:             r.ID().String(),
		Name:           r.Name(),
		Status:         r.Status(),
		Battery:        r.Battery(),
		Location:       r.Location(),
		LastMaintained: r.LastMaintained(),
	}
}
