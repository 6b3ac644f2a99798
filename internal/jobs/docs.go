// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so schedules look
// like "*/30 * * * * *".
//
// # Available Jobs
//
// 1. TaskStatsJob - counts tasks per status and publishes them as a Prometheus gauge
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statsReader, m, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
