package ports

import (
	"context"

	"tradefinance/internal/core/domain/model/order"
)

// EventPublisher notifies downstream consumers of completed order
// transitions. Publication happens after the write-back succeeded; a
// publish failure is reported to the caller but never rolls the
// transition back.
type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
