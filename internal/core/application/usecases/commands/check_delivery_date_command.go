package commands

import (
	"errors"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/pkg/errs"
)

var ErrCheckDeliveryDateCommandIsNotConstructed = errors.New(
	"CheckDeliveryDateCommand must be created via NewCheckDeliveryDateCommand constructor",
)

// CheckDeliveryDateCommand asks whether an order's latest delivery date has
// elapsed, expiring the order when it has. The check carries no caller
// identity: it is driven by the system clock (the expiry job) as much as by
// any party, and grants nothing beyond what the clock already dictates.
type CheckDeliveryDateCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard kernel.ConstructorGuard
}

// NewCheckDeliveryDateCommand creates a command to run the deadline check.
func NewCheckDeliveryDateCommand(orderID string) (CheckDeliveryDateCommand, error) {
	cmd := CheckDeliveryDateCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CheckDeliveryDateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckDeliveryDateCommand) Validate() error {
	return c.guard.Validate(ErrCheckDeliveryDateCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c CheckDeliveryDateCommand) OrderID() string {
	return c.orderID
}

func (c *CheckDeliveryDateCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}
