// Package location contains the campus location reference entity.
// Locations are immutable reference data: named places on campus (dorms,
// stores, libraries) that items are picked up from and orders are dropped at.
package location

import (
	"errors"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/errs"
	"campusdrop/internal/pkg/guard"
)

var (
	// ErrLocationIsNotConstructed is returned when a Location instance was not
	// created through the RestoreLocation factory method.
	ErrLocationIsNotConstructed = errors.New("Location must be created via RestoreLocation constructor")
	// ErrNameIsRequired is returned when a location has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTypeIsRequired is returned when a location has no type category.
	ErrTypeIsRequired = errs.NewValueIsRequiredError("type")
)

// Location is a named place on campus. The type field is a free-form
// category such as "dorm" or "store" used for grouping in listings.
// Locations are never created or mutated by this service; they are
// restored from reference data.
type Location struct {
	id           kernel.UUID
	name         string
	locationType string

	guard guard.ConstructorGuard
}

// RestoreLocation reconstructs a Location from persistent reference data.
// All fields are required.
func RestoreLocation(id kernel.UUID, name, locationType string) (*Location, error) {
	loc := &Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
		loc.setType(locationType),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// Validate ensures the Location was created through RestoreLocation.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsEqual compares two locations by their unique identifiers.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the human-readable location name.
func (l *Location) Name() string {
	return l.name
}

// Type returns the free-form location category, e.g. "dorm" or "store".
func (l *Location) Type() string {
	return l.locationType
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	l.name = name
	return nil
}

func (l *Location) setType(locationType string) error {
	if locationType == "" {
		return ErrTypeIsRequired
	}
	l.locationType = locationType
	return nil
}
