package queries

import (
	"context"

	"tradefinance/internal/adapters/out/ledgerstore"
	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/core/ports"
	"tradefinance/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order record straight from the
// ledger. The read side skips the repository and aggregate rehydration:
// a stored record is returned as-is even when the write model would
// reject it, so operators can inspect what is actually on the ledger.
type GetOrderQueryHandler struct {
	ledger ports.Ledger
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(ledger ports.Ledger) GetOrderQueryHandler {
	return GetOrderQueryHandler{ledger: ledger}
}

// Handle executes the query. Returns an ObjectNotFoundError when no
// record exists under the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	raw, found, err := h.ledger.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if !found {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	dto, err := decodeRecord(raw)
	if err != nil {
		return OrderResponse{}, errs.NewValueIsInvalidErrorWithCause("order record", err)
	}

	return responseFromDTO(dto), nil
}

func responseFromDTO(dto ledgerstore.OrderDTO) OrderResponse {
	return OrderResponse{
		OrderID:            dto.OrderID,
		State:              order.State(dto.State).String(),
		ProductID:          dto.ProductID,
		Quantity:           dto.Quantity,
		Price:              dto.Price,
		ShippingCosts:      dto.ShippingCosts,
		ShippingAddress:    dto.ShippingAddress,
		LatestDeliveryDate: dto.LatestDeliveryDate,
		TrackingCode:       dto.TrackingCode,
		BuyerSigned:        dto.BuyerSigned,
		FreightSigned:      dto.FreightSigned,
	}
}
