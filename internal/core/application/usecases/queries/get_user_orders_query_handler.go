package queries

import (
	"context"
	"database/sql"

	"campusdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderDetailsColumns is the column list shared by the joined order
// queries. Keep it in sync with scanOrderDetails.
const orderDetailsColumns = `
	o.id, o.status, o.created_at, o.updated_at,
	i.id, i.name, i.category, i.weight_kg, i.fragile,
	p.id, p.name, p.max_weight_kg,
	l.id, l.name, l.type
`

// GetUserOrdersQueryHandler retrieves a user's order history with joined
// item, partner, and drop-location details.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a user's orders, newest first.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderDetails, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderDetailsColumns+`
		FROM orders o
		LEFT JOIN items i ON i.id = o.item_id
		LEFT JOIN delivery_partners p ON p.id = o.partner_id
		LEFT JOIN locations l ON l.id = o.drop_location_id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		details, scanErr := scanOrderDetails(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, details)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderDetails maps one joined order row into the OrderDetails read
// model. Joined references are nullable; absent rows produce nil
// projections rather than zero values.
func scanOrderDetails(rows *sql.Rows) (OrderDetails, error) {
	var (
		details OrderDetails
		orderID uuid.UUID

		itemID       uuid.NullUUID
		itemName     sql.NullString
		itemCategory sql.NullString
		itemWeightKg sql.NullFloat64
		itemFragile  sql.NullBool

		partnerID          uuid.NullUUID
		partnerName        sql.NullString
		partnerMaxWeightKg sql.NullFloat64

		locationID   uuid.NullUUID
		locationName sql.NullString
		locationType sql.NullString
	)

	err := rows.Scan(
		&orderID, &details.Status, &details.CreatedAt, &details.UpdatedAt,
		&itemID, &itemName, &itemCategory, &itemWeightKg, &itemFragile,
		&partnerID, &partnerName, &partnerMaxWeightKg,
		&locationID, &locationName, &locationType,
	)
	if err != nil {
		return OrderDetails{}, err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return OrderDetails{}, err
	}
	details.ID = id

	if itemID.Valid {
		joinedID, idErr := kernel.UUIDFromBytes(itemID.UUID[:])
		if idErr != nil {
			return OrderDetails{}, idErr
		}
		details.Item = &OrderItemDetails{
			ID:       joinedID,
			Name:     itemName.String,
			Category: itemCategory.String,
			WeightKg: itemWeightKg.Float64,
			Fragile:  itemFragile.Bool,
		}
	}

	if partnerID.Valid {
		joinedID, idErr := kernel.UUIDFromBytes(partnerID.UUID[:])
		if idErr != nil {
			return OrderDetails{}, idErr
		}
		details.Partner = &OrderPartnerDetails{
			ID:          joinedID,
			Name:        partnerName.String,
			MaxWeightKg: partnerMaxWeightKg.Float64,
		}
	}

	if locationID.Valid {
		joinedID, idErr := kernel.UUIDFromBytes(locationID.UUID[:])
		if idErr != nil {
			return OrderDetails{}, idErr
		}
		details.DropLocation = &OrderLocationDetails{
			ID:   joinedID,
			Name: locationName.String,
			Type: locationType.String,
		}
	}

	return details, nil
}
