package queries

import (
	"errors"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/guard"
)

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery retrieves all delivery partners with their current
// availability, for the partner roster view.
type GetPartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a query for the full partner roster.
func NewGetPartnersQuery() GetPartnersQuery {
	return GetPartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// GetPartnersQueryResponse is the read model for a delivery partner.
type GetPartnersQueryResponse struct {
	ID                kernel.UUID
	Name              string
	CurrentLocationID *kernel.UUID
	MaxWeightKg       float64
	CanHandleFragile  bool
	Available         bool
}
