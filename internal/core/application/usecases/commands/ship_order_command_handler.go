package commands

import (
	"context"
	"fmt"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/core/ports"
)

// ShipOrderCommandHandler handles the seller shipping a confirmed order.
type ShipOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewShipOrderCommandHandler creates a handler for order shipment.
func NewShipOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle processes the ship-order command.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize(cmd.Actor(), kernel.RoleSeller); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Ship(cmd.TrackingCode()); err != nil {
		return err
	}

	if err = h.orders.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		return fmt.Errorf("order %s shipped but event publish failed: %w", aggregate.ID(), err)
	}

	return nil
}
