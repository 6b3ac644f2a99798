package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetdispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule runs the stats job every 30 seconds.
const DefaultStatsSchedule = "*/30 * * * * *"

// statsSink receives the counts of one run.
type statsSink interface {
	SetTaskCounts(counts map[string]int64)
}

// TaskStatsJob periodically publishes the number of tasks per status.
type TaskStatsJob struct {
	reader   ports.TaskStatsReader
	sink     statsSink
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTaskStatsJob creates the job. An empty schedule falls back to DefaultStatsSchedule.
func NewTaskStatsJob(reader ports.TaskStatsReader, sink statsSink, schedule string, logger *slog.Logger) *TaskStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &TaskStatsJob{
		reader:   reader,
		sink:     sink,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "task_stats_job"),
	}
}

// Start refreshes the figures once and then on every tick.
func (j *TaskStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	_ = j.RunOnce(context.Background())

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Task stats job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single refresh.
func (j *TaskStatsJob) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	counts, err := j.reader.CountByStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Task stats job failed", "error", err)
		return err
	}

	j.sink.SetTaskCounts(counts)
	j.logger.DebugContext(ctx, "Task stats refreshed", "statuses", len(counts))
	return nil
}

// Stop stops scheduling and waits for a running refresh to finish.
func (j *TaskStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Task stats job stopped")
}
