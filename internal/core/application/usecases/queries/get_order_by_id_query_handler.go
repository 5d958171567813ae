package queries

import (
	"context"

	"campusdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order with its joined details.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query for a single order.
// Returns an ObjectNotFoundError when no order has the given identifier.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderDetailsColumns+`
		FROM orders o
		LEFT JOIN items i ON i.id = o.item_id
		LEFT JOIN delivery_partners p ON p.id = o.partner_id
		LEFT JOIN locations l ON l.id = o.drop_location_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderDetails{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetails{}, err
		}
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	details, err := scanOrderDetails(rows)
	if err != nil {
		return OrderDetails{}, err
	}

	return details, nil
}
