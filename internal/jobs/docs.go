// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and run in UTC.
//
// # Available Jobs
//
// MonthlyOrderJob creates the recurring order of every active subscription
// that is due. The schedule comes from RECURRING_ORDERS_SCHEDULE, a standard
// five-field expression or a descriptor such as "@daily". When it is empty no
// job is scheduled and the run is triggered only through the cron endpoint.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.NewMonthlyOrderJob(handler, "0 6 * * *", metrics, logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run that cannot list subscriptions is logged and counted as failed.
// Per-workspace failures are part of the run summary and logged as warnings.
// Overlapping runs are skipped.
package jobs
