package commands

import (
	"context"
	"fmt"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/core/ports"
)

// CreateOrderCommandHandler handles order registration. Only the seller may
// create orders; creation fails when a record already exists under the
// identifier or when the order fields violate the domain invariants.
type CreateOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle processes the create-order command. The role check runs before the
// existence check; a rejected creation leaves no record behind.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize(cmd.Actor(), kernel.RoleSeller); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ProductID(),
		cmd.Quantity(),
		cmd.Price(),
		cmd.ShippingCosts(),
		cmd.ShippingAddress(),
		cmd.LatestDeliveryDate(),
	)
	if err != nil {
		return err
	}

	if err = h.orders.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		return fmt.Errorf("order %s created but event publish failed: %w", aggregate.ID(), err)
	}

	return nil
}
