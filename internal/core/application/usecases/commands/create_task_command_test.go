package commands_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPackageInput() *commands.PackageInput {
	return &commands.PackageInput{
		QRCode:   ptr("QR1"),
		Size:     ptr(1.0),
		Weight:   ptr(2.0),
		Location: ptr("A"),
		Status:   ptr("PENDING"),
	}
}

func validRobotInput() *commands.RobotInput {
	return &commands.RobotInput{
		Name:           ptr("Bot1"),
		Status:         ptr("IDLE"),
		Battery:        ptr(80),
		Location:       ptr("Dock"),
		LastMaintained: ptr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func validationFields(t *testing.T, err error) []string {
	t.Helper()

	var fields []string
	var walk func(error)
	walk = func(e error) {
		if ve, ok := e.(*errs.ValidationError); ok {
			fields = append(fields, ve.Field)
			return
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
		}
	}
	walk(err)
	return fields
}

func TestNewCreateTaskCommand(t *testing.T) {
	t.Run("ids only produce by-id references", func(t *testing.T) {
		cmd, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageID: ptr("P1"),
			RobotID:   ptr("R1"),
			Status:    "ASSIGNED",
		})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, kernel.RefByID, cmd.Package().Kind())
		assert.Equal(t, "P1", cmd.Package().ID().String())
		assert.Equal(t, kernel.RefByID, cmd.Robot().Kind())
		assert.Equal(t, task.Status("ASSIGNED"), cmd.Status())
		assert.Nil(t, cmd.CompletedAt())
	})

	t.Run("data only produces inline references", func(t *testing.T) {
		cmd, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageData: validPackageInput(),
			RobotData:   validRobotInput(),
			Status:      "ASSIGNED",
		})

		require.NoError(t, err)
		assert.Equal(t, kernel.RefInline, cmd.Package().Kind())
		data, ok := cmd.Package().Data()
		require.True(t, ok)
		assert.Equal(t, "QR1", data.QRCode)
		assert.Equal(t, kernel.RefInline, cmd.Robot().Kind())
	})

	t.Run("id and data produce by-id-or-create references", func(t *testing.T) {
		cmd, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageID:   ptr("P1"),
			PackageData: validPackageInput(),
			RobotID:     ptr("R1"),
			RobotData:   validRobotInput(),
			Status:      "ASSIGNED",
		})

		require.NoError(t, err)
		assert.Equal(t, kernel.RefByIDOrCreate, cmd.Package().Kind())
		assert.Equal(t, kernel.RefByIDOrCreate, cmd.Robot().Kind())
	})

	t.Run("blank id counts as absent", func(t *testing.T) {
		cmd, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageID:   ptr(""),
			PackageData: validPackageInput(),
			RobotID:     ptr("R1"),
			Status:      "ASSIGNED",
		})

		require.NoError(t, err)
		assert.Equal(t, kernel.RefInline, cmd.Package().Kind())
	})

	t.Run("zero battery is present", func(t *testing.T) {
		in := validRobotInput()
		in.Battery = ptr(0)

		cmd, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageID: ptr("P1"),
			RobotData: in,
			Status:    "ASSIGNED",
		})

		require.NoError(t, err)
		data, _ := cmd.Robot().Data()
		assert.Zero(t, data.Battery)
	})

	t.Run("missing references and status are all reported", func(t *testing.T) {
		_, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{})

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.ElementsMatch(t, []string{"packageId", "robotId", "status"}, validationFields(t, err))
		assert.Contains(t, err.Error(), "either packageId or packageData must be provided")
	})

	t.Run("missing inline fields are reported by path", func(t *testing.T) {
		_, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageData: &commands.PackageInput{QRCode: ptr("QR1")},
			RobotData:   &commands.RobotInput{Name: ptr("Bot1"), Status: ptr("IDLE"), Location: ptr("Dock")},
			Status:      "ASSIGNED",
		})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ElementsMatch(t, []string{
			"packageData.size", "packageData.weight", "packageData.location", "packageData.status",
			"robotData.battery", "robotData.lastMaintained",
		}, validationFields(t, err))
	})

	t.Run("blank package status is rejected with the other field errors", func(t *testing.T) {
		in := validPackageInput()
		in.Status = ptr("  ")

		_, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageData: in,
			Status:      "ASSIGNED",
		})

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.ElementsMatch(t, []string{"packageData.status", "robotId"}, validationFields(t, err))
		assert.Contains(t, err.Error(), "packageData.status: "+commands.RuleNotBlank)
	})

	t.Run("completedAt needs COMPLETED status", func(t *testing.T) {
		_, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageID:   ptr("P1"),
			RobotID:     ptr("R1"),
			Status:      "ASSIGNED",
			CompletedAt: ptr(time.Now()),
		})

		require.ErrorIs(t, err, task.ErrCompletedAtWithoutCompletion)
		assert.Equal(t, []string{"completedAt"}, validationFields(t, err))
	})

	t.Run("completedAt with COMPLETED is copied", func(t *testing.T) {
		ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

		cmd, err := commands.NewCreateTaskCommand(commands.CreateTaskInput{
			PackageID:   ptr("P1"),
			RobotID:     ptr("R1"),
			Status:      "COMPLETED",
			CompletedAt: &ts,
		})

		require.NoError(t, err)
		ts = ts.Add(time.Hour)
		assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), *cmd.CompletedAt())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateTaskCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateTaskCommandIsNotConstructed)
	})
}
