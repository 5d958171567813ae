package queries

import (
	"context"

	"campusdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetItemsQueryHandler retrieves the available item catalog from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern; unavailable items are filtered out at the store.
type GetItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsQueryHandler creates a handler for item catalog queries.
// Requires a GORM database connection for query execution.
func NewGetItemsQueryHandler(db *gorm.DB) GetItemsQueryHandler {
	return GetItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all available items.
// Returns item read models ordered by category.
func (h GetItemsQueryHandler) Handle(
	ctx context.Context,
	query GetItemsQuery,
) ([]GetItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			pickup_location_id,
			weight_kg,
			fragile
		FROM items
		WHERE available = true
		ORDER BY category
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetItemsQueryResponse
		var id uuid.UUID
		var pickupLocationID uuid.NullUUID

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Category,
			&pickupLocationID,
			&item.WeightKg,
			&item.Fragile,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		if pickupLocationID.Valid {
			locID, locErr := kernel.UUIDFromBytes(pickupLocationID.UUID[:])
			if locErr != nil {
				return nil, locErr
			}
			item.PickupLocationID = &locID
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
