// Package ports defines the interfaces between the core and its external
// collaborators: persistence, identity, and change notification. These
// contracts enable dependency inversion and testability.
package ports

import (
	"context"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInRequestedStatus retrieves the oldest order still waiting
	// for partner assignment. Used by the pending-assignment job.
	GetFirstInRequestedStatus(ctx context.Context) (*order.Order, error)
}
