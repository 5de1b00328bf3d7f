package ledgerstore

import (
	"context"

	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/core/ports"
	"tradefinance/internal/pkg/errs"
)

// LedgerOrderRepository implements ports.OrderRepository on any Ledger
// adapter. Orders are stored under their identifier; the ledger's per-key
// write serialization makes each repository call atomic from the caller's
// perspective.
type LedgerOrderRepository struct {
	ledger ports.Ledger
}

// NewLedgerOrderRepository creates an order repository over the given ledger.
func NewLedgerOrderRepository(ledger ports.Ledger) *LedgerOrderRepository {
	return &LedgerOrderRepository{ledger: ledger}
}

// Add saves a new order, failing when the key is already occupied.
func (r *LedgerOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	_, found, err := r.ledger.Get(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if found {
		return errs.NewObjectAlreadyExistsError("order", aggregate.ID())
	}

	raw, err := Encode(aggregate)
	if err != nil {
		return err
	}

	return r.ledger.Put(ctx, aggregate.ID(), raw)
}

// Update saves an existing order, failing when no record exists.
func (r *LedgerOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	_, found, err := r.ledger.Get(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	raw, err := Encode(aggregate)
	if err != nil {
		return err
	}

	return r.ledger.Put(ctx, aggregate.ID(), raw)
}

// Get retrieves an order by its identifier.
func (r *LedgerOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	raw, found, err := r.ledger.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	aggregate, err := Decode(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order record", err)
	}

	return aggregate, nil
}
