package queries

import (
	"errors"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/guard"
)

var ErrGetLocationsQueryIsNotConstructed = errors.New(
	"GetLocationsQuery must be created via NewGetLocationsQuery constructor",
)

// GetLocationsQuery retrieves campus locations, optionally excluding one.
// The exclusion is used when listing drop-off choices: the item's pickup
// location is not a sensible destination.
type GetLocationsQuery struct {
	excludeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLocationsQuery creates a query for all campus locations.
func NewGetLocationsQuery() GetLocationsQuery {
	return GetLocationsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetDropLocationsQuery creates a query for drop-off candidates,
// excluding the given location.
func NewGetDropLocationsQuery(excludeID kernel.UUID) (GetLocationsQuery, error) {
	if err := excludeID.Validate(); err != nil {
		return GetLocationsQuery{}, err
	}
	return GetLocationsQuery{
		excludeID: &excludeID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationsQueryIsNotConstructed)
}

// ExcludeID returns the location to leave out of the listing, or nil.
func (q GetLocationsQuery) ExcludeID() *kernel.UUID {
	return q.excludeID
}

// GetLocationsQueryResponse is the read model for a campus location.
type GetLocationsQueryResponse struct {
	ID   kernel.UUID
	Name string
	Type string
}
