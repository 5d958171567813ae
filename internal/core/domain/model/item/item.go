// Package item contains the deliverable item entity.
// Items are listed goods users can request delivery for. They are immutable
// once listed except for the availability flag, which is toggled externally.
package item

import (
	"errors"
	"fmt"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/errs"
	"campusdrop/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through the RestoreItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem constructor")
	// ErrNameIsRequired is returned when an item has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsRequired is returned when an item has no category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
)

// Item is a deliverable good listed in the catalog.
//
// Invariants:
//   - Weight is a positive number of kilograms
//   - The pickup location reference may be absent (items without a fixed
//     pickup point)
//   - Fragile items may only be carried by fragile-certified partners,
//     enforced by the assignment service
type Item struct {
	id               kernel.UUID
	name             string
	category         string
	pickupLocationID *kernel.UUID
	weightKg         float64
	fragile          bool
	available        bool

	guard guard.ConstructorGuard
}

// RestoreItem reconstructs an Item from persistent storage.
// Weight must be positive; name and category are required.
func RestoreItem(
	id kernel.UUID,
	name string,
	category string,
	pickupLocationID *kernel.UUID,
	weightKg float64,
	fragile bool,
	available bool,
) (*Item, error) {
	item := &Item{
		fragile:   fragile,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setPickupLocationID(pickupLocationID),
		item.setWeightKg(weightKg),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was created through RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Category returns the item's catalog category.
func (i *Item) Category() string {
	return i.category
}

// PickupLocationID returns the location the item is picked up from.
// Returns nil when the item has no fixed pickup point.
func (i *Item) PickupLocationID() *kernel.UUID {
	return i.pickupLocationID
}

// WeightKg returns the item's weight in kilograms.
func (i *Item) WeightKg() float64 {
	return i.weightKg
}

// Fragile reports whether the item requires fragile handling.
func (i *Item) Fragile() bool {
	return i.fragile
}

// Available reports whether the item is currently listed for delivery.
func (i *Item) Available() bool {
	return i.available
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	i.category = category
	return nil
}

func (i *Item) setPickupLocationID(pickupLocationID *kernel.UUID) error {
	if pickupLocationID != nil {
		if err := pickupLocationID.Validate(); err != nil {
			return err
		}
	}
	i.pickupLocationID = pickupLocationID
	return nil
}

func (i *Item) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v kg is not greater than 0", weightKg))
	}
	i.weightKg = weightKg
	return nil
}
