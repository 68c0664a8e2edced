package jobs

import (
	"fmt"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	monthlyOrderJob *MonthlyOrderJob
}

// NewJobManager takes a nil job when in-process scheduling is disabled.
func NewJobManager(monthlyOrderJob *MonthlyOrderJob) *JobManager {
	return &JobManager{
		monthlyOrderJob: monthlyOrderJob,
	}
}

func (jm *JobManager) StartAll() error {
	if jm.monthlyOrderJob == nil {
		return nil
	}
	if err := jm.monthlyOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start monthly order job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.monthlyOrderJob != nil {
		jm.monthlyOrderJob.Stop()
	}
}
