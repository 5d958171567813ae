package queries

import (
	"context"

	"campusdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLocationsQueryHandler retrieves campus location reference data.
type GetLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationsQueryHandler creates a handler for location queries.
// Requires a GORM database connection for query execution.
func NewGetLocationsQueryHandler(db *gorm.DB) GetLocationsQueryHandler {
	return GetLocationsQueryHandler{db: db}
}

// Handle executes the query to retrieve locations.
// Returns location read models ordered by type, honoring the optional
// exclusion.
func (h GetLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetLocationsQuery,
) ([]GetLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, name, type
		FROM locations
		ORDER BY type
	`
	args := make([]any, 0, 1)
	if query.ExcludeID() != nil {
		sql = `
			SELECT id, name, type
			FROM locations
			WHERE id <> ?
			ORDER BY type
		`
		args = append(args, query.ExcludeID().Bytes())
	}

	locations := make([]GetLocationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var location GetLocationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &location.Name, &location.Type)
		if err != nil {
			return nil, err
		}

		locationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		location.ID = locationID

		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
