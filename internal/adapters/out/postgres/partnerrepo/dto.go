// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence. Partners are reference data maintained
// by operations staff, so the repository only reads them.
package partnerrepo

import (
	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for delivery partners.
type PartnerDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"type:varchar(255);not null"`
	CurrentLocationID *uuid.UUID `gorm:"type:uuid;index"`
	MaxWeightKg       float64    `gorm:"type:numeric;not null"`
	CanHandleFragile  bool       `gorm:"not null"`
	IsAvailable       bool       `gorm:"not null;index"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "delivery_partners".
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// toDomain converts a database row to a partner entity.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentLocationID *kernel.UUID
	if dto.CurrentLocationID != nil {
		locID, locErr := kernel.UUIDFromBytes((*dto.CurrentLocationID)[:])
		if locErr != nil {
			return nil, locErr
		}
		currentLocationID = &locID
	}

	return partner.RestorePartner(
		id, dto.Name, currentLocationID,
		dto.MaxWeightKg, dto.CanHandleFragile, dto.IsAvailable,
	)
}
