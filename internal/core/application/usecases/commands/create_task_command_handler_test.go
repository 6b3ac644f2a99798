package commands_test

import (
	"errors"
	"testing"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/parcel"
	"fleetdispatch/internal/core/domain/model/robot"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func existingPackage(t *testing.T, raw string) *parcel.Package {
	t.Helper()
	id, _ := kernel.ParseID(raw)
	p, err := parcel.NewPackage(id, parcel.Data{QRCode: "QR-" + raw, Location: "A", Status: "PENDING"})
	require.NoError(t, err)
	return p
}

func existingRobot(t *testing.T, raw string) *robot.Robot {
	t.Helper()
	id, _ := kernel.ParseID(raw)
	r, err := robot.NewRobot(id, robot.Data{Name: "Bot", Status: "IDLE", Battery: 50, Location: "Dock"})
	require.NoError(t, err)
	return r
}

func TestCreateTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTaskCommand(commands.CreateTaskInput{
		PackageID: ptr("P1"),
		RobotID:   ptr("R1"),
		Status:    "ASSIGNED",
	})
	pkg := existingPackage(t, "P1")
	bot := existingRobot(t, "R1")

	pkgRepo := new(MockPackageRepository)
	robotRepo := new(MockRobotRepository)
	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(pkgRepo).Once(),
		pkgRepo.On("Get", ctx, pkg.ID()).Return(pkg, nil).Once(),
		uow.On("RobotRepository").Return(robotRepo).Once(),
		robotRepo.On("Get", ctx, bot.ID()).Return(bot, nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Add", ctx, mock.AnythingOfType("*task.Task")).Return(nil).Once(),
		taskRepo.On("GetDetails", ctx, mock.AnythingOfType("kernel.ID"), ports.IncludeAll).
			Return(ports.TaskDetails{Package: pkg, Robot: bot}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTaskCommandHandler(factory, services.NewReferenceResolver(), fixedClock)
	details, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, pkg, details.Package)
	assert.Same(t, bot, details.Robot)
	pkgRepo.AssertExpectations(t)
	robotRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateTaskCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewCreateTaskCommandHandler(factory, services.NewReferenceResolver(), fixedClock)

	_, err := h.Handle(t.Context(), commands.CreateTaskCommand{})

	require.ErrorIs(t, err, commands.ErrCreateTaskCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTaskCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTaskCommand(commands.CreateTaskInput{PackageID: ptr("P1"), RobotID: ptr("R1"), Status: "ASSIGNED"})

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateTaskCommandHandler(factory, services.NewReferenceResolver(), fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", ctx)
}

func TestCreateTaskCommandHandler_Handle_MissingRobotRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTaskCommand(commands.CreateTaskInput{
		PackageData: validPackageInput(),
		RobotID:     ptr("R404"),
		Status:      "ASSIGNED",
	})
	robotID, _ := kernel.ParseID("R404")

	pkgRepo := new(MockPackageRepository)
	robotRepo := new(MockRobotRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(pkgRepo).Once(),
		pkgRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("RobotRepository").Return(robotRepo).Once(),
		robotRepo.On("Get", ctx, robotID).Return(nil, errs.NewObjectNotFoundError(robot.Kind, "R404")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTaskCommandHandler(factory, services.NewReferenceResolver(), fixedClock)
	_, err := h.Handle(ctx, cmd)

	var nf *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, robot.Kind, nf.ParamName)
	assert.Contains(t, err.Error(), "resolve robot")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
	pkgRepo.AssertExpectations(t)
}

func TestCreateTaskCommandHandler_Handle_MissingPackageStopsBeforeRobot(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTaskCommand(commands.CreateTaskInput{
		PackageID: ptr("P404"),
		RobotData: validRobotInput(),
		Status:    "ASSIGNED",
	})
	pkgID, _ := kernel.ParseID("P404")

	pkgRepo := new(MockPackageRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackageRepository").Return(pkgRepo).Once(),
		pkgRepo.On("Get", ctx, pkgID).Return(nil, errs.NewObjectNotFoundError(parcel.Kind, "P404")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTaskCommandHandler(factory, services.NewReferenceResolver(), fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "RobotRepository")
	uow.AssertExpectations(t)
}

func TestCreateTaskCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTaskCommand(commands.CreateTaskInput{PackageID: ptr("P1"), RobotID: ptr("R1"), Status: "ASSIGNED"})
	pkg := existingPackage(t, "P1")
	bot := existingRobot(t, "R1")

	pkgRepo := new(MockPackageRepository)
	pkgRepo.On("Get", ctx, pkg.ID()).Return(pkg, nil)
	robotRepo := new(MockRobotRepository)
	robotRepo.On("Get", ctx, bot.ID()).Return(bot, nil)
	taskRepo := new(MockTaskRepository)
	taskRepo.On("Add", ctx, mock.Anything).Return(nil)
	taskRepo.On("GetDetails", ctx, mock.Anything, ports.IncludeAll).Return(ports.TaskDetails{}, nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("PackageRepository").Return(pkgRepo)
	uow.On("RobotRepository").Return(robotRepo)
	uow.On("TaskRepository").Return(taskRepo)
	uow.On("Commit", ctx).Return(errs.NewStoreError("commit", errors.New("connection reset")))
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateTaskCommandHandler(factory, services.NewReferenceResolver(), fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStore)
	uow.AssertCalled(t, "Rollback", ctx)
}
