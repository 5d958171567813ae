// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database rows.
package orderrepo

import (
	"time"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Timestamps are owned by the aggregate, so GORM's automatic
// create/update tracking is disabled on them.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemID         uuid.UUID  `gorm:"type:uuid;not null"`
	PartnerID      *uuid.UUID `gorm:"type:uuid;index"`
	DropLocationID uuid.UUID  `gorm:"type:uuid;not null"`
	Status         string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		UserID:         aggregate.UserID().Bytes(),
		ItemID:         aggregate.ItemID().Bytes(),
		PartnerID:      partnerID,
		DropLocationID: aggregate.DropLocationID().Bytes(),
		Status:         aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row back into an order aggregate using
// RestoreOrder, which revalidates status and partner consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	dropLocationID, err := kernel.UUIDFromBytes(dto.DropLocationID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, userID, itemID, partnerID, dropLocationID,
		status, dto.CreatedAt, dto.UpdatedAt,
	)
}
