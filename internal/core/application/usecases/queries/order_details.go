package queries

import (
	"time"

	"campusdrop/internal/core/domain/model/kernel"
)

// OrderDetails is the read model for an order joined with its item,
// assigned partner, and drop location. The joined references are pointers
// because the underlying foreign keys are nullable; a missing partner
// simply means the order has not been assigned.
type OrderDetails struct {
	ID           kernel.UUID
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Item         *OrderItemDetails
	Partner      *OrderPartnerDetails
	DropLocation *OrderLocationDetails
}

// OrderItemDetails is the item projection embedded in an order view.
type OrderItemDetails struct {
	ID       kernel.UUID
	Name     string
	Category string
	WeightKg float64
	Fragile  bool
}

// OrderPartnerDetails is the partner projection embedded in an order view.
type OrderPartnerDetails struct {
	ID          kernel.UUID
	Name        string
	MaxWeightKg float64
}

// OrderLocationDetails is the location projection embedded in an order view.
type OrderLocationDetails struct {
	ID   kernel.UUID
	Name string
	Type string
}
