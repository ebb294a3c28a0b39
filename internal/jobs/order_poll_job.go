package jobs

import (
	"context"
	"log/slog"

	"pos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderPollJob keeps the order snapshot fresh. Runs every five seconds to
// fetch the active orders from the backend; a failed fetch is logged and the
// previous snapshot stays in place until the next tick.
type OrderPollJob struct {
	handler commands.RefreshOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderPollJob creates a new job for polling active orders.
// Uses RefreshOrdersCommandHandler to replace the snapshot on every tick.
func NewOrderPollJob(handler commands.RefreshOrdersCommandHandler, logger *slog.Logger) *OrderPollJob {
	return &OrderPollJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_poll_job"),
	}
}

// Start begins the order poll job to run every five seconds.
func (j *OrderPollJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRefreshOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order poll job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order poll job started (running every five seconds)")
	return nil
}

// Stop stops the order poll job.
func (j *OrderPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order poll job stopped")
}
