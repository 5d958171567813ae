// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries return optimized read models for specific use
// cases, bypassing the domain aggregates.
package queries

import (
	"errors"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/guard"
)

var ErrGetItemsQueryIsNotConstructed = errors.New(
	"GetItemsQuery must be created via NewGetItemsQuery constructor",
)

// GetItemsQuery retrieves the catalog of items currently listed for
// delivery, grouped by category for display.
type GetItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetItemsQuery creates a query for the available item catalog.
func NewGetItemsQuery() GetItemsQuery {
	return GetItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// GetItemsQueryResponse is the read model for a catalog item.
type GetItemsQueryResponse struct {
	ID               kernel.UUID
	Name             string
	Category         string
	PickupLocationID *kernel.UUID
	WeightKg         float64
	Fragile          bool
}
