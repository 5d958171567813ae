// Package kafka provides Kafka-backed implementations of the order change
// notification ports. Events are encoded as JSON and keyed by order ID so
// a partitioned topic preserves per-order ordering.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campusdrop/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// orderChangedMessage is the wire format for order change events.
type orderChangedMessage struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements OrderChangedPublisher on top of a Kafka topic.
type Publisher struct {
	topic string
	w     messageWriter
}

// NewPublisher creates a publisher writing to the given topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		topic: topic,
		w: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func newPublisherWithWriter(topic string, w messageWriter) *Publisher {
	return &Publisher{topic: topic, w: w}
}

// Publish sends one order change event. The order ID is the message key,
// keeping events for the same order on one partition.
func (p *Publisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(orderChangedMessage{
		OrderID:   event.OrderID.String(),
		Status:    event.Status.String(),
		UpdatedAt: event.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode order changed event: %w", err)
	}

	if err := p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	return p.w.Close()
}
