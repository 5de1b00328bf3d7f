package commands

import (
	"context"
	"fmt"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/core/ports"
)

// CancelOrderCommandHandler handles pre-shipment order withdrawal. Either
// the seller or the buyer may cancel; the carrier may not.
type CancelOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle processes the cancel-order command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize(cmd.Actor(), kernel.RoleSeller, kernel.RoleBuyer); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = h.orders.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		return fmt.Errorf("order %s cancelled but event publish failed: %w", aggregate.ID(), err)
	}

	return nil
}
