package taskrepo_test

import (
	"errors"
	"regexp"
	"testing"

	"fleetdispatch/internal/adapters/out/postgres/taskrepo"
	"fleetdispatch/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var countQuery = regexp.QuoteMeta("COUNT(*)") + `\s+FROM tasks\s+GROUP BY status`

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestGormTaskStats_CountByStatus(t *testing.T) {
	t.Run("groups counts by status", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(countQuery).
			WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
				AddRow("ASSIGNED", 3).
				AddRow("COMPLETED", 1))

		counts, err := taskrepo.NewGormTaskStats(db).CountByStatus(t.Context())

		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"ASSIGNED": 3, "COMPLETED": 1}, counts)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table gives an empty map", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"status", "count"}))

		counts, err := taskrepo.NewGormTaskStats(db).CountByStatus(t.Context())

		require.NoError(t, err)
		assert.Empty(t, counts)
	})

	t.Run("driver errors become store errors", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(countQuery).WillReturnError(errors.New("connection reset"))

		_, err := taskrepo.NewGormTaskStats(db).CountByStatus(t.Context())

		require.ErrorIs(t, err, errs.ErrStore)
		assert.Contains(t, err.Error(), "count tasks by status")
	})
}
