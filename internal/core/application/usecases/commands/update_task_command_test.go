package commands_test

import (
	"testing"
	"time"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/task"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateTaskCommand(t *testing.T) {
	t.Run("no fields is an empty overwrite", func(t *testing.T) {
		cmd, err := commands.NewUpdateTaskCommand("T1", commands.UpdateTaskInput{})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "T1", cmd.TaskID().String())
		assert.True(t, cmd.Changes().IsEmpty())
	})

	t.Run("all fields are carried", func(t *testing.T) {
		ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		cmd, err := commands.NewUpdateTaskCommand("T1", commands.UpdateTaskInput{
			PackageID:   ptr("P2"),
			RobotID:     ptr("R2"),
			Status:      ptr("COMPLETED"),
			CompletedAt: &ts,
		})

		require.NoError(t, err)
		ch := cmd.Changes()
		assert.Equal(t, "P2", ch.PackageID.String())
		assert.Equal(t, "R2", ch.RobotID.String())
		assert.Equal(t, task.Completed, *ch.Status)
		assert.True(t, ch.CompletedAt.Equal(ts))
	})

	t.Run("blank values are rejected", func(t *testing.T) {
		_, err := commands.NewUpdateTaskCommand(" ", commands.UpdateTaskInput{
			PackageID: ptr(""),
			RobotID:   ptr(" "),
			Status:    ptr(""),
		})

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.ElementsMatch(t, []string{"taskId", "packageId", "robotId", "status"}, validationFields(t, err))
	})
}

func TestTaskIDCommands(t *testing.T) {
	complete, err := commands.NewCompleteTaskCommand("T1")
	require.NoError(t, err)
	require.NoError(t, complete.Validate())
	assert.Equal(t, "T1", complete.TaskID().String())

	del, err := commands.NewDeleteTaskCommand("T1")
	require.NoError(t, err)
	require.NoError(t, del.Validate())
	assert.Equal(t, "T1", del.TaskID().String())

	_, err = commands.NewCompleteTaskCommand("")
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = commands.NewDeleteTaskCommand("")
	require.ErrorIs(t, err, errs.ErrValidation)

	require.ErrorIs(t, commands.CompleteTaskCommand{}.Validate(), commands.ErrCompleteTaskCommandIsNotConstructed)
	require.ErrorIs(t, commands.DeleteTaskCommand{}.Validate(), commands.ErrDeleteTaskCommandIsNotConstructed)
	require.ErrorIs(t, commands.UpdateTaskCommand{}.Validate(), commands.ErrUpdateTaskCommandIsNotConstructed)
}
