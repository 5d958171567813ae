package ports

import (
	"context"
	"time"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/order"
)

// OrderChangedEvent notifies subscribers that an order row changed.
// Carries enough state for listeners to refresh a displayed order without
// an immediate round trip for the common case.
type OrderChangedEvent struct {
	OrderID   kernel.UUID
	Status    order.Status
	UpdatedAt time.Time
}

// OrderChangedPublisher publishes change events after successful order
// mutations. Publishing is best-effort relative to the transaction: the
// mutation commits first and a lost event only delays a subscriber's
// refresh.
type OrderChangedPublisher interface {
	Publish(ctx context.Context, event OrderChangedEvent) error
}

// OrderChangeHandler consumes a single change event.
// Returning an error leaves the event unacknowledged on transports that
// support redelivery.
type OrderChangeHandler func(ctx context.Context, event OrderChangedEvent) error

// OrderChangeStream delivers order change events to interested listeners.
// Subscribe blocks until ctx is cancelled or the underlying stream fails.
// A nil orderID subscribes to changes for all orders; a non-nil orderID
// narrows delivery to that single order.
type OrderChangeStream interface {
	Subscribe(ctx context.Context, orderID *kernel.UUID, handler OrderChangeHandler) error
}
