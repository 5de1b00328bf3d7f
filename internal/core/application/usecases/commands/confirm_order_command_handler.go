package commands

import (
	"context"
	"fmt"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/core/ports"
)

// ConfirmOrderCommandHandler handles buyer confirmation of a created order.
type ConfirmOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle processes the confirm-order command: authorize the buyer, re-read
// the record, apply the transition, write back.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize(cmd.Actor(), kernel.RoleBuyer); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = h.orders.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		return fmt.Errorf("order %s confirmed but event publish failed: %w", aggregate.ID(), err)
	}

	return nil
}
