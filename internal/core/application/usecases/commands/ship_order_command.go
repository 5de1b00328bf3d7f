package commands

import (
	"errors"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/pkg/errs"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents the seller handing the goods to the carrier,
// moving a confirmed order to Shipped and recording the tracking code.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	orderID      string
	trackingCode string

	guard kernel.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order. The tracking code
// is required: a shipment without one cannot be attested on arrival.
func NewShipOrderCommand(actor kernel.Actor, orderID, trackingCode string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setTrackingCode(trackingCode),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c ShipOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the target order identifier.
func (c ShipOrderCommand) OrderID() string {
	return c.orderID
}

// TrackingCode returns the carrier tracking code to record.
func (c ShipOrderCommand) TrackingCode() string {
	return c.trackingCode
}

func (c *ShipOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ShipOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *ShipOrderCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	c.trackingCode = trackingCode
	return nil
}
