package queries

import (
	"errors"

	"tradefinance/internal/core/domain/model/kernel"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery enumerates every record on the ledger in key order.
// This is a parameterless query used for monitoring and reconciliation.
type GetAllOrdersQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to enumerate all ledger records.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// LedgerEntry is one enumerated record. Record holds the decoded order
// when the stored value parses; otherwise Record is nil and Raw carries
// the stored bytes verbatim, so foreign or corrupt records show up in the
// listing instead of breaking it.
type LedgerEntry struct {
	Key    string         `json:"key"`
	Record *OrderResponse `json:"record,omitempty"`
	Raw    string         `json:"raw,omitempty"`
}
