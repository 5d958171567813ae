package ports

import (
	"context"

	"campusdrop/internal/core/domain/model/item"
	"campusdrop/internal/core/domain/model/kernel"
)

// ItemRepository defines the read contract for catalog items.
// Items are reference data from the core's perspective; listing and
// availability toggling happen outside this service.
type ItemRepository interface {
	// Get retrieves an item by its unique identifier.
	// Returns an ObjectNotFoundError when the item does not exist.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)
}
