package ports

import (
	"context"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/partner"
)

// PartnerRepository defines the read contract for delivery partners.
// The core never mutates partners; their availability and location change
// through partner actions outside this service.
type PartnerRepository interface {
	// Get retrieves a partner by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetAll retrieves the full partner set. The assignment service
	// evaluates its eligibility filter over this set rather than pushing
	// the filter into the store, so diagnostic reasons can be built from
	// the item alone.
	GetAll(ctx context.Context) ([]*partner.Partner, error)
}
