package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long an order may sit in the initial status before the
// reminder re-raises it to the staff channel.
const staleAfter = 10 * time.Minute

// StaleReminderNotifier re-raises unattended orders in the staff channel.
// Satisfied by notifications.Dispatcher.
type StaleReminderNotifier interface {
	NotifyStaleOrders(ctx context.Context, stale []queries.GetStaleNewOrdersQueryResponse)
}

// StaleOrderReminderJob watches for orders nobody has picked up since
// intake. Runs every minute.
type StaleOrderReminderJob struct {
	handler  queries.GetStaleNewOrdersQueryHandler
	notifier StaleReminderNotifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderReminderJob creates a new job re-raising unattended orders.
func NewStaleOrderReminderJob(
	handler queries.GetStaleNewOrdersQueryHandler,
	notifier StaleReminderNotifier,
	logger *slog.Logger,
) *StaleOrderReminderJob {
	return &StaleOrderReminderJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_order_reminder_job"),
	}
}

// Start begins the reminder job to run every minute.
func (j *StaleOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStaleNewOrdersQuery(time.Now().Add(-staleAfter))
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Building stale order query failed", "error", queryErr)
			return
		}

		stale, queryErr := j.handler.Handle(ctx, query)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale order reminder job failed", "error", queryErr)
			return
		}

		j.notifier.NotifyStaleOrders(ctx, stale)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *StaleOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order reminder job stopped")
}
