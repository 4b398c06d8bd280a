package jobs

import (
	"fmt"
	"log/slog"

	"relais/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unclaimedParcelJob *UnclaimedParcelJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	remindHandler commands.RemindUnclaimedParcelsCommandHandler,
	reminderThresholdDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		unclaimedParcelJob: NewUnclaimedParcelJob(remindHandler, reminderThresholdDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.unclaimedParcelJob.Start(); err != nil {
		return fmt.Errorf("failed to start unclaimed parcel job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.unclaimedParcelJob.Stop()
}
