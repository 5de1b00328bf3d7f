package commands

import (
	"errors"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/pkg/errs"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents the buyer accepting an order's terms,
// moving it from Created to Confirmed.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID string

	guard kernel.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order.
func NewConfirmOrderCommand(actor kernel.Actor, orderID string) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c ConfirmOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the target order identifier.
func (c ConfirmOrderCommand) OrderID() string {
	return c.orderID
}

func (c *ConfirmOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ConfirmOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}
