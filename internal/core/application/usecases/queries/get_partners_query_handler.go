package queries

import (
	"context"

	"campusdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartnersQueryHandler retrieves the delivery partner roster.
type GetPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersQueryHandler creates a handler for partner roster queries.
// Requires a GORM database connection for query execution.
func NewGetPartnersQueryHandler(db *gorm.DB) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all partners.
// Returns partner read models ordered by name.
func (h GetPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnersQuery,
) ([]GetPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			current_location_id,
			max_weight_kg,
			can_handle_fragile,
			is_available
		FROM delivery_partners
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p GetPartnersQueryResponse
		var id uuid.UUID
		var currentLocationID uuid.NullUUID

		err = rows.Scan(
			&id,
			&p.Name,
			&currentLocationID,
			&p.MaxWeightKg,
			&p.CanHandleFragile,
			&p.Available,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		p.ID = partnerID

		if currentLocationID.Valid {
			locID, locErr := kernel.UUIDFromBytes(currentLocationID.UUID[:])
			if locErr != nil {
				return nil, locErr
			}
			p.CurrentLocationID = &locID
		}

		partners = append(partners, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
