package jobs

import (
	"context"
	"errors"
	"log/slog"

	"campusdrop/internal/core/application/usecases/commands"
	"campusdrop/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// PendingAssignmentJob retries partner assignment for orders still in
// requested status. Runs every ten seconds so an order left without a
// partner picks one up as soon as the roster frees up.
type PendingAssignmentJob struct {
	handler commands.AssignPendingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingAssignmentJob creates a new job for assigning pending orders.
func NewPendingAssignmentJob(
	handler commands.AssignPendingOrderCommandHandler,
	logger *slog.Logger,
) *PendingAssignmentJob {
	return &PendingAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_assignment_job"),
	}
}

// Start begins the pending assignment job.
func (j *PendingAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue or a fully busy roster is normal; only
			// unexpected failures are worth logging.
			if !errors.Is(err, commands.ErrNoPendingOrders) &&
				!errors.Is(err, services.ErrNoEligiblePartner) {
				j.logger.ErrorContext(ctx, "Pending assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending assignment job started (running every 10 seconds)")
	return nil
}

// Stop stops the pending assignment job.
func (j *PendingAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending assignment job stopped")
}
