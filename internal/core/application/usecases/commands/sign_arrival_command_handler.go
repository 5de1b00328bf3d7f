package commands

import (
	"context"
	"fmt"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/core/ports"
)

// SignArrivalCommandHandler handles arrival attestation by the buyer or the
// freight carrier. Delivery closes only once both have signed; a caller
// holding both role attributes signs for both parties in one call.
type SignArrivalCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewSignArrivalCommandHandler creates a handler for arrival signing.
func NewSignArrivalCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) SignArrivalCommandHandler {
	return SignArrivalCommandHandler{
		orders:    orders,
		publisher: publisher,
	}
}

// Handle processes the sign-arrival command. The signer identity comes from
// the caller's role attributes resolved by the authentication layer.
func (h SignArrivalCommandHandler) Handle(ctx context.Context, cmd SignArrivalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorize(cmd.Actor(), kernel.RoleBuyer, kernel.RoleFreight); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	byBuyer := cmd.Actor().HasRole(kernel.RoleBuyer)
	byFreight := cmd.Actor().HasRole(kernel.RoleFreight)

	if err = aggregate.SignArrival(byBuyer, byFreight); err != nil {
		return err
	}

	if err = h.orders.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		return fmt.Errorf("order %s arrival signed but event publish failed: %w", aggregate.ID(), err)
	}

	return nil
}
