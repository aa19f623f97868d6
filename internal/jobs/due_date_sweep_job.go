package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"printflow/internal/core/application/usecases/queries"
)

// DueDateSweepJob periodically scans for items that are past their due
// date and still in a pre-delivery status. Findings go to the log; the
// dashboard reads the same query on demand.
type DueDateSweepJob struct {
	handler queries.GetOverdueItemsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDueDateSweepJob creates a new job for the overdue sweep.
func NewDueDateSweepJob(handler queries.GetOverdueItemsQueryHandler, logger *slog.Logger) *DueDateSweepJob {
	return &DueDateSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "due_date_sweep_job"),
	}
}

// Start begins the sweep, running at the top of every minute.
func (j *DueDateSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverdueItemsQuery(time.Now().UTC())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Due date sweep failed to build query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Due date sweep failed", "error", handleErr)
			return
		}

		for _, item := range overdue {
			j.logger.WarnContext(ctx, "Item is past its due date",
				"itemId", item.ItemID.String(),
				"orderId", item.OrderID.String(),
				"product", item.ProductName,
				"status", item.Status.String(),
				"dueDate", item.DueDate,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Due date sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *DueDateSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Due date sweep job stopped")
}
