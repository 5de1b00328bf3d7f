package ports

import (
	"context"

	"tradefinance/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates on
// top of the Ledger. Each order lives under its identifier as a single
// record; records are never deleted, terminal orders remain for audit.
//
// Enumeration is deliberately absent here: the read side scans the ledger
// directly (see the queries package) so that one undecodable record cannot
// block visibility of the rest.
type OrderRepository interface {
	// Add persists a new order. Fails with an ObjectAlreadyExistsError when
	// a record already exists under the order's identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Fails with an
	// ObjectNotFoundError when no record exists under the identifier.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, or an ObjectNotFoundError.
	Get(ctx context.Context, id string) (*order.Order, error)
}
