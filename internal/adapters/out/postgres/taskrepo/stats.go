package taskrepo

import (
	"context"

	"fleetdispatch/internal/adapters/out/postgres/pgerr"

	"gorm.io/gorm"
)

// GormTaskStats counts tasks per status with a single grouped query.
type GormTaskStats struct {
	db *gorm.DB
}

func NewGormTaskStats(db *gorm.DB) GormTaskStats {
	return GormTaskStats{db: db}
}

// CountByStatus implements ports.TaskStatsReader.
func (s GormTaskStats) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM tasks
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, pgerr.Wrap("count tasks by status", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, pgerr.Wrap("count tasks by status", err)
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Wrap("count tasks by status", err)
	}

	return counts, nil
}
