package jobs

import (
	"context"
	"log/slog"

	"relais/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// UnclaimedParcelJob runs the daily reminder sweep for parcels still waiting
// at a relay point past the configured threshold.
type UnclaimedParcelJob struct {
	handler       commands.RemindUnclaimedParcelsCommandHandler
	olderThanDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewUnclaimedParcelJob creates the reminder job. olderThanDays is the number
// of days a parcel may wait before its recipient is reminded.
func NewUnclaimedParcelJob(
	handler commands.RemindUnclaimedParcelsCommandHandler,
	olderThanDays int,
	logger *slog.Logger,
) *UnclaimedParcelJob {
	return &UnclaimedParcelJob{
		handler:       handler,
		olderThanDays: olderThanDays,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "unclaimed_parcel_job"),
	}
}

// Start schedules the reminder sweep to run once a day at 08:00.
func (j *UnclaimedParcelJob) Start() error {
	_, err := j.cron.AddFunc("0 0 8 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRemindUnclaimedParcelsCommand(j.olderThanDays)
		if err != nil {
			j.logger.ErrorContext(ctx, "Unclaimed parcel sweep misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Unclaimed parcel sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Unclaimed parcel job started (running daily)", "olderThanDays", j.olderThanDays)
	return nil
}

// Stop stops the reminder job.
func (j *UnclaimedParcelJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Unclaimed parcel job stopped")
}
