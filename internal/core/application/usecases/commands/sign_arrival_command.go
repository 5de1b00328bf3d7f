package commands

import (
	"errors"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/pkg/errs"
)

var ErrSignArrivalCommandIsNotConstructed = errors.New(
	"SignArrivalCommand must be created via NewSignArrivalCommand constructor",
)

// SignArrivalCommand represents a party attesting the physical arrival of a
// shipped order. The signing party is derived from the caller's own role
// attributes, not from an explicit parameter: a caller cannot sign on
// another party's behalf.
type SignArrivalCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID string

	guard kernel.ConstructorGuard
}

// NewSignArrivalCommand creates a command to sign an order's arrival.
func NewSignArrivalCommand(actor kernel.Actor, orderID string) (SignArrivalCommand, error) {
	cmd := SignArrivalCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return SignArrivalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignArrivalCommand) Validate() error {
	return c.guard.Validate(ErrSignArrivalCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c SignArrivalCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the target order identifier.
func (c SignArrivalCommand) OrderID() string {
	return c.orderID
}

func (c *SignArrivalCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *SignArrivalCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}
