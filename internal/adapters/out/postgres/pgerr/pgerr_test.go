package pgerr_test

import (
	"errors"
	"testing"

	"fleetdispatch/internal/adapters/out/postgres/pgerr"
	"fleetdispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, pgerr.Wrap("add package", nil))
	})

	t.Run("unique violation becomes already exists", func(t *testing.T) {
		err := pgerr.Wrap("add package", &pgconn.PgError{Code: "23505", ConstraintName: "packages_pkey"})

		require.ErrorIs(t, err, errs.ErrStore)
		require.ErrorIs(t, err, errs.ErrAlreadyExists)
		assert.Contains(t, err.Error(), "packages_pkey")
	})

	t.Run("translated duplicate key becomes already exists", func(t *testing.T) {
		err := pgerr.Wrap("add robot", gorm.ErrDuplicatedKey)
		require.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := pgerr.Wrap("add task", &pgconn.PgError{Code: "23503", ConstraintName: "tasks_robot_id_fkey"})

		require.ErrorIs(t, err, errs.ErrStore)
		require.ErrorIs(t, err, pgerr.ErrForeignKeyViolation)
		assert.NotErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("other errors are plain store failures", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := pgerr.Wrap("list tasks", cause)

		var storeErr *errs.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "list tasks", storeErr.Op)
		require.ErrorIs(t, err, cause)
	})
}
