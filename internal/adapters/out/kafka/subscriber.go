package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/order"
	"campusdrop/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Subscriber implements OrderChangeStream on top of a Kafka consumer.
type Subscriber struct {
	r messageReader
}

// NewSubscriber creates a subscriber reading from the given topic.
// With a non-empty groupID offsets are committed against the consumer
// group; without one the reader starts from the latest offset.
func NewSubscriber(brokers []string, topic, groupID string) *Subscriber {
	cfg := kafka.ReaderConfig{
		Brokers:           brokers,
		GroupID:           groupID,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	}
	if groupID != "" {
		cfg.GroupTopics = []string{topic}
	} else {
		cfg.Topic = topic
	}
	return &Subscriber{
		r: kafka.NewReader(cfg),
	}
}

func newSubscriberWithReader(r messageReader) *Subscriber {
	return &Subscriber{r: r}
}

// Close releases the underlying reader.
func (s *Subscriber) Close() error {
	return s.r.Close()
}

// Subscribe delivers order change events to handler until ctx is
// cancelled or the stream fails. A nil orderID delivers every event;
// otherwise only events for that order reach the handler. Offsets are
// committed only after the handler succeeds, so a failed delivery is
// retried on the next run.
func (s *Subscriber) Subscribe(
	ctx context.Context,
	orderID *kernel.UUID,
	handler ports.OrderChangeHandler,
) error {
	for {
		msg, err := s.r.FetchMessage(ctx)
		if err != nil {
			return fmt.Errorf("fetch message: %w", err)
		}

		event, decodeErr := decodeOrderChanged(msg.Value)
		if decodeErr == nil && (orderID == nil || orderID.IsEqual(event.OrderID)) {
			if handlerErr := handler(ctx, event); handlerErr != nil {
				return handlerErr
			}
		}

		// Malformed payloads are committed too, otherwise a poison
		// message wedges the whole stream.
		if err := s.r.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit message: %w", err)
		}
	}
}

func decodeOrderChanged(value []byte) (ports.OrderChangedEvent, error) {
	var msg orderChangedMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return ports.OrderChangedEvent{}, fmt.Errorf("decode order changed event: %w", err)
	}

	id, err := kernel.UUIDFromString(msg.OrderID)
	if err != nil {
		return ports.OrderChangedEvent{}, err
	}

	status, err := order.StatusFromString(msg.Status)
	if err != nil {
		return ports.OrderChangedEvent{}, err
	}

	return ports.OrderChangedEvent{
		OrderID:   id,
		Status:    status,
		UpdatedAt: msg.UpdatedAt,
	}, nil
}
