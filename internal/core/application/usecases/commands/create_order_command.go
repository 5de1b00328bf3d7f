package commands

import (
	"errors"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/pkg/errs"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents the seller's request to register a new
// purchase order. Field-level invariants that belong to the order itself
// (price versus shipping costs, date format) are enforced by the domain
// constructor; the command only guarantees presence of the essentials.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(seller, "order-1", 7, 3, 100, 20,
//	    "1 Harbor Road", "2030-07-15")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor              kernel.Actor
	orderID            string
	productID          int
	quantity           int
	price              int64
	shippingCosts      int64
	shippingAddress    string
	latestDeliveryDate string

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
func NewCreateOrderCommand(
	actor kernel.Actor,
	orderID string,
	productID int,
	quantity int,
	price int64,
	shippingCosts int64,
	shippingAddress string,
	latestDeliveryDate string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.productID = productID
	cmd.quantity = quantity
	cmd.price = price
	cmd.shippingCosts = shippingCosts
	cmd.shippingAddress = shippingAddress
	cmd.latestDeliveryDate = latestDeliveryDate

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the caller identity.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// ProductID returns the identifier of the traded good.
func (c CreateOrderCommand) ProductID() int {
	return c.productID
}

// Quantity returns the traded quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Price returns the agreed monetary amount.
func (c CreateOrderCommand) Price() int64 {
	return c.price
}

// ShippingCosts returns the shipping cost share.
func (c CreateOrderCommand) ShippingCosts() int64 {
	return c.shippingCosts
}

// ShippingAddress returns the delivery destination.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// LatestDeliveryDate returns the deadline in YYYY-MM-DD form.
func (c CreateOrderCommand) LatestDeliveryDate() string {
	return c.latestDeliveryDate
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}
