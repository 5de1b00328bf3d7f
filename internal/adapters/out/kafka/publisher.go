// Package kafka publishes order lifecycle events to a Kafka topic.
// Consumers downstream (settlement, notifications) react to state changes
// without polling the ledger.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tradefinance/internal/core/domain/model/order"
	"tradefinance/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventOrderChanged is emitted after every successful order write.
const EventOrderChanged = "OrderChanged"

// OrderChangedEnvelope is the wire shape of an order change event.
type OrderChangedEnvelope struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	OrderID    string    `json:"order_id"`
	State      string    `json:"state"`
}

// OrderChangedPublisher implements ports.EventPublisher on a Kafka writer.
// Writes are synchronous; the caller decides how to react to a publish
// failure after the ledger write already succeeded.
type OrderChangedPublisher struct {
	writer *kafka.Writer
}

// NewOrderChangedPublisher creates a publisher writing to the given topic.
// Messages are keyed by order identifier so all events of one order land
// on the same partition in order.
func NewOrderChangedPublisher(brokers []string, topic string) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

var _ ports.EventPublisher = (*OrderChangedPublisher)(nil)

// PublishOrderChanged emits an OrderChanged event for the aggregate's
// current state.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	envelope := OrderChangedEnvelope{
		EventID:    uuid.NewString(),
		EventType:  EventOrderChanged,
		OccurredAt: time.Now().UTC(),
		OrderID:    aggregate.ID(),
		State:      aggregate.State().String(),
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal order changed event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(aggregate.ID()),
		Value: value,
		Time:  envelope.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("publish order changed event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
