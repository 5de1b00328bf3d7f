package queries

import (
	"context"
	"encoding/json"
	"fmt"

	"tradefinance/internal/adapters/out/ledgerstore"
	"tradefinance/internal/core/ports"
)

// GetAllOrdersQueryHandler scans the full ledger keyspace. Like the point
// lookup, it reads records without rehydrating aggregates: enumeration is
// tolerant, a single bad record must not hide the rest.
type GetAllOrdersQueryHandler struct {
	ledger ports.Ledger
}

// NewGetAllOrdersQueryHandler creates a handler for ledger enumeration.
func NewGetAllOrdersQueryHandler(ledger ports.Ledger) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{ledger: ledger}
}

// Handle executes the query. Entries come back ordered by key; values
// that do not decode as order records are surfaced raw. An empty ledger
// yields an empty slice, not an error.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]LedgerEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	it, err := h.ledger.Range(ctx, "", "")
	if err != nil {
		return nil, err
	}
	defer it.Close()

	entries := make([]LedgerEntry, 0)
	for it.Next() {
		entry := LedgerEntry{Key: it.Key()}

		if dto, decodeErr := decodeRecord(it.Value()); decodeErr == nil {
			record := responseFromDTO(dto)
			entry.Record = &record
		} else {
			entry.Raw = string(it.Value())
		}

		entries = append(entries, entry)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func decodeRecord(raw []byte) (ledgerstore.OrderDTO, error) {
	var dto ledgerstore.OrderDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return ledgerstore.OrderDTO{}, err
	}
	if dto.DocType != ledgerstore.DocTypeOrder {
		return ledgerstore.OrderDTO{}, fmt.Errorf("unexpected document type %q", dto.DocType)
	}
	return dto, nil
}
