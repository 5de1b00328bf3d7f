package queries

import (
	"errors"

	"tradefinance/internal/core/domain/model/kernel"
	"tradefinance/internal/pkg/errs"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order record by its identifier.
// Any party to the trade can inspect an order, so the query carries no
// caller identity.
//
// Example:
//
//	query, err := NewGetOrderQuery("order-1")
//	if err != nil {
//	    return err
//	}
//
//	record, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", record.OrderID, record.State)
type GetOrderQuery struct {
	orderID string

	guard kernel.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order identifier.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the target order identifier.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// OrderResponse is the read-side shape of an order record. The state is
// reported by name, the delivery date in YYYY-MM-DD form.
type OrderResponse struct {
	OrderID            string  `json:"orderId"`
	State              string  `json:"state"`
	ProductID          int     `json:"productId"`
	Quantity           int     `json:"quantity"`
	Price              int64   `json:"price"`
	ShippingCosts      int64   `json:"shippingCosts"`
	ShippingAddress    string  `json:"shippingAddress"`
	LatestDeliveryDate string  `json:"latestDeliveryDate"`
	TrackingCode       *string `json:"trackingCode,omitempty"`
	BuyerSigned        bool    `json:"buyerSigned"`
	FreightSigned      bool    `json:"freightSigned"`
}
