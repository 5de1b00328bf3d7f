package jobs

import (
	"context"
	"errors"
	"log/slog"

	"tradefinance/internal/core/application/usecases/commands"
	"tradefinance/internal/core/application/usecases/queries"
	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DeadlineExpiryJob sweeps the ledger for orders whose latest delivery
// date elapsed and expires them to Passed. Runs every minute; the expiry
// comparison itself lives in the domain, the job only drives the clock.
type DeadlineExpiryJob struct {
	orders  queries.GetAllOrdersQueryHandler
	checker commands.CheckDeliveryDateCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeadlineExpiryJob creates a job that periodically checks delivery
// deadlines across all orders.
func NewDeadlineExpiryJob(
	orders queries.GetAllOrdersQueryHandler,
	checker commands.CheckDeliveryDateCommandHandler,
	logger *slog.Logger,
) *DeadlineExpiryJob {
	return &DeadlineExpiryJob{
		orders:  orders,
		checker: checker,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "deadline_expiry_job"),
	}
}

// Start begins the deadline sweep, running at the top of every minute.
func (j *DeadlineExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline expiry job started (running every minute)")
	return nil
}

// Stop stops the deadline sweep.
func (j *DeadlineExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline expiry job stopped")
}

// RunOnce performs a single sweep over all orders, outside the schedule.
// The cron trigger calls it every minute; operators can also drive it
// directly after a clock or store incident.
func (j *DeadlineExpiryJob) RunOnce(ctx context.Context) {
	entries, err := j.orders.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Deadline sweep failed to enumerate orders", "error", err)
		return
	}

	for _, entry := range entries {
		if !eligibleForExpiry(entry) {
			continue
		}

		cmd, err := commands.NewCheckDeliveryDateCommand(entry.Record.OrderID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Deadline sweep skipped order", "order_id", entry.Key, "error", err)
			continue
		}

		passed, err := j.checker.Handle(ctx, cmd)
		if err != nil {
			// An order closing between enumeration and check is an
			// expected race, not a sweep failure.
			if errors.Is(err, errs.ErrStateIsInvalid) {
				continue
			}
			j.logger.ErrorContext(ctx, "Deadline check failed", "order_id", entry.Key, "error", err)
			continue
		}

		if passed {
			j.logger.InfoContext(ctx, "Order expired past its delivery deadline", "order_id", entry.Key)
		}
	}
}

// eligibleForExpiry filters the enumeration down to decodable order
// records that have not reached delivery closure.
func eligibleForExpiry(entry queries.LedgerEntry) bool {
	if entry.Record == nil {
		return false
	}

	switch entry.Record.State {
	case order.Created.String(), order.Confirmed.String(), order.Shipped.String():
		return true
	default:
		return false
	}
}
