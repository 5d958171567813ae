// Package partner contains the delivery partner entity.
// Partners carry orders between campus locations. Their availability and
// current location change over time through partner actions outside this
// service; the core only reads them when selecting a partner for an item.
package partner

import (
	"errors"
	"fmt"

	"campusdrop/internal/core/domain/model/item"
	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/errs"
	"campusdrop/internal/pkg/guard"
)

var (
	// ErrPartnerIsNotConstructed is returned when a Partner instance was not
	// created through the RestorePartner factory method.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via RestorePartner constructor")
	// ErrNameIsRequired is returned when a partner has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Partner is a delivery partner able to carry orders.
//
// Invariants:
//   - MaxWeightKg is a positive carry capacity in kilograms
//   - The current location reference may be absent (partner in transit)
//   - A partner is never mutated by this core; selection reads its state
type Partner struct {
	id                kernel.UUID
	name              string
	currentLocationID *kernel.UUID
	maxWeightKg       float64
	canHandleFragile  bool
	available         bool

	guard guard.ConstructorGuard
}

// RestorePartner reconstructs a Partner from persistent storage.
// Name is required and max carry weight must be positive.
func RestorePartner(
	id kernel.UUID,
	name string,
	currentLocationID *kernel.UUID,
	maxWeightKg float64,
	canHandleFragile bool,
	available bool,
) (*Partner, error) {
	p := &Partner{
		canHandleFragile: canHandleFragile,
		available:        available,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCurrentLocationID(currentLocationID),
		p.setMaxWeightKg(maxWeightKg),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Partner was created through RestorePartner.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// CurrentLocationID returns the partner's current location.
// Returns nil when the partner is between locations.
func (p *Partner) CurrentLocationID() *kernel.UUID {
	return p.currentLocationID
}

// MaxWeightKg returns the partner's maximum carry weight in kilograms.
func (p *Partner) MaxWeightKg() float64 {
	return p.maxWeightKg
}

// CanHandleFragile reports whether the partner is certified for fragile items.
func (p *Partner) CanHandleFragile() bool {
	return p.canHandleFragile
}

// Available reports whether the partner is currently taking deliveries.
func (p *Partner) Available() bool {
	return p.available
}

// CanCarry checks whether the partner is eligible for the given item.
// A partner qualifies only if it is available, its capacity covers the
// item's weight, and it is fragile-certified when the item is fragile.
// All three clauses must hold; there are no partial matches.
func (p *Partner) CanCarry(it *item.Item) (bool, error) {
	if err := it.Validate(); err != nil {
		return false, err
	}

	if !p.available {
		return false, nil
	}
	if p.maxWeightKg < it.WeightKg() {
		return false, nil
	}
	if it.Fragile() && !p.canHandleFragile {
		return false, nil
	}

	return true, nil
}

// IsAtLocation reports whether the partner currently stands at the given
// location. A partner with no current location is at no location.
func (p *Partner) IsAtLocation(locationID *kernel.UUID) bool {
	if p.currentLocationID == nil || locationID == nil {
		return false
	}
	return p.currentLocationID.IsEqual(*locationID)
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Partner) setCurrentLocationID(currentLocationID *kernel.UUID) error {
	if currentLocationID != nil {
		if err := currentLocationID.Validate(); err != nil {
			return err
		}
	}
	p.currentLocationID = currentLocationID
	return nil
}

func (p *Partner) setMaxWeightKg(maxWeightKg float64) error {
	if maxWeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max weight",
			fmt.Errorf("%v kg is not greater than 0", maxWeightKg))
	}
	p.maxWeightKg = maxWeightKg
	return nil
}
