package jobs

import (
	"fmt"
	"log/slog"

	"fleetdispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	taskStatsJob *TaskStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statsReader ports.TaskStatsReader,
	sink statsSink,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		taskStatsJob: NewTaskStatsJob(statsReader, sink, statsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.taskStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start task stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.taskStatsJob.Stop()
}
