package commands

import (
	"context"
	"fmt"

	"tradefinance/internal/core/ports"
)

// CheckDeliveryDateCommandHandler runs the deadline check against an order.
// Before the deadline the check is a no-op returning false; after it, the
// order expires to Passed exactly once and the check returns true. Orders
// that already reached delivery closure reject the check.
type CheckDeliveryDateCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
	clock     Clock
}

// NewCheckDeliveryDateCommandHandler creates a handler for deadline checks.
// The clock supplies the invocation-time reference for comparison.
func NewCheckDeliveryDateCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	clock Clock,
) CheckDeliveryDateCommandHandler {
	return CheckDeliveryDateCommandHandler{
		orders:    orders,
		publisher: publisher,
		clock:     clock,
	}
}

// Handle processes the deadline check and reports whether the order
// expired on this invocation.
func (h CheckDeliveryDateCommandHandler) Handle(
	ctx context.Context,
	cmd CheckDeliveryDateCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	passed, err := aggregate.PassDeadline(h.clock())
	if err != nil {
		return false, err
	}

	if !passed {
		return false, nil
	}

	if err = h.orders.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		return true, fmt.Errorf("order %s expired but event publish failed: %w", aggregate.ID(), err)
	}

	return true, nil
}
