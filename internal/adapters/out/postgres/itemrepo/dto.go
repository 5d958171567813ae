// Package itemrepo provides data transfer objects and mapping functions
// for catalog item persistence. The catalog is reference data, so the
// repository only reads it.
package itemrepo

import (
	"campusdrop/internal/core/domain/model/item"
	"campusdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for catalog items.
type ItemDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name             string     `gorm:"type:varchar(255);not null"`
	Category         string     `gorm:"type:varchar(255);not null"`
	PickupLocationID *uuid.UUID `gorm:"type:uuid;index"`
	WeightKg         float64    `gorm:"type:numeric;not null"`
	Fragile          bool       `gorm:"not null"`
	Available        bool       `gorm:"not null;index"`
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// toDomain converts a database row to an item entity.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var pickupLocationID *kernel.UUID
	if dto.PickupLocationID != nil {
		locID, locErr := kernel.UUIDFromBytes((*dto.PickupLocationID)[:])
		if locErr != nil {
			return nil, locErr
		}
		pickupLocationID = &locID
	}

	return item.RestoreItem(
		id, dto.Name, dto.Category, pickupLocationID,
		dto.WeightKg, dto.Fragile, dto.Available,
	)
}
