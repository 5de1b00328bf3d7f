// Package ledgerstore persists order aggregates as JSON documents on the
// key-value ledger. It implements the repository pattern for the order
// aggregate, handling the conversion between the domain entity and the
// stored document.
package ledgerstore

import (
	"encoding/json"
	"time"

	"tradefinance/internal/core/domain/model/order"
)

// DocTypeOrder tags order documents so records written by other schemas
// sharing the keyspace can be told apart.
const DocTypeOrder = "order"

// OrderDTO is the stored shape of an order record. The state is persisted
// as its ordinal, the delivery date in YYYY-MM-DD form; the tracking code
// and signatures stay absent until the corresponding transition sets them.
type OrderDTO struct {
	DocType            string  `json:"docType"`
	OrderID            string  `json:"orderId"`
	State              int     `json:"state"`
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

// FromDomain converts an order aggregate to its stored representation.
func FromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		DocType:            DocTypeOrder,
		OrderID:            aggregate.ID(),
		State:              int(aggregate.State()),
		ProductID:          aggregate.ProductID(),
		Quantity:           aggregate.Quantity(),
		Price:              aggregate.Price(),
		ShippingCosts:      aggregate.ShippingCosts(),
		ShippingAddress:    aggregate.ShippingAddress(),
		LatestDeliveryDate: aggregate.LatestDeliveryDate().Format(order.DeliveryDateLayout),
		TrackingCode:       aggregate.TrackingCode(),
		BuyerSigned:        aggregate.BuyerSigned(),
		FreightSigned:      aggregate.FreightSigned(),
	}
}

// ToDomain rehydrates an order aggregate from its stored representation.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	deliveryDate, err := time.Parse(order.DeliveryDateLayout, dto.LatestDeliveryDate)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.OrderID,
		order.State(dto.State),
		dto.ProductID,
		dto.Quantity,
		dto.Price,
		dto.ShippingCosts,
		dto.ShippingAddress,
		deliveryDate,
		dto.TrackingCode,
		dto.BuyerSigned,
		dto.FreightSigned,
	)
}

// Encode marshals the stored representation of an aggregate.
func Encode(aggregate *order.Order) ([]byte, error) {
	return json.Marshal(FromDomain(aggregate))
}

// Decode unmarshals raw ledger bytes into an order aggregate. It fails for
// documents of other types or with undecodable content; callers on the
// enumeration path treat that failure as "surface the raw value", not as a
// fatal error.
func Decode(raw []byte) (*order.Order, error) {
	var dto OrderDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	return ToDomain(dto)
}
