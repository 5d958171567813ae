package order

import (
	"errors"
	"time"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrPartnerAlreadyAssigned is returned when assigning a partner to an
	// order that already has one. Re-routing is not supported: the partner
	// reference, once set, is never reassigned.
	ErrPartnerAlreadyAssigned = errors.New("order already has an assigned partner")
)

// Order is the aggregate root for a delivery request. It references the
// requesting user, the item, the drop location, and (once assigned) the
// delivery partner, and it owns the status lifecycle.
//
// Invariants:
//   - All entity references are valid identifiers
//   - The partner reference, once set, is never reassigned
//   - Status moves only along the explicit transition table
//   - Every mutation refreshes the last-updated timestamp
//   - Orders are never deleted; terminal states are kept for history
type Order struct {
	id             kernel.UUID
	userID         kernel.UUID
	itemID         kernel.UUID
	partnerID      *kernel.UUID
	dropLocationID kernel.UUID
	status         Status
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Requested status with no partner.
// Creation and assignment are separate aggregate operations even though the
// exposed creation path performs both synchronously; see Assign.
func NewOrder(id, userID, itemID, dropLocationID kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Requested,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItemID(itemID),
		o.setDropLocationID(dropLocationID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
// Unlike NewOrder, it accepts any valid status and an optional partner,
// and validates that the two are consistent.
func RestoreOrder(
	id, userID, itemID kernel.UUID,
	partnerID *kernel.UUID,
	dropLocationID kernel.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItemID(itemID),
		o.setPartnerID(partnerID),
		o.setDropLocationID(dropLocationID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHavePartner(partnerID != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ItemID returns the identifier of the requested item.
func (o *Order) ItemID() kernel.UUID {
	return o.itemID
}

// PartnerID returns the assigned partner's identifier.
// Returns nil while the order is unassigned.
func (o *Order) PartnerID() *kernel.UUID {
	return o.partnerID
}

// DropLocationID returns the identifier of the delivery destination.
func (o *Order) DropLocationID() kernel.UUID {
	return o.dropLocationID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-updated timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign assigns a delivery partner and moves the order to Assigned.
//
// Rules:
//   - The partner ID must be valid
//   - The order must be in Requested status
//   - An order that already has a partner cannot be reassigned
func (o *Order) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.partnerID != nil {
		return ErrPartnerAlreadyAssigned
	}

	newStatus, err := o.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = &partnerID
	o.touch()
	return nil
}

// ChangeStatus moves the order to a new lifecycle status through the
// transition table and refreshes the last-updated timestamp.
//
// Assignment is excluded: moving into Assigned requires a partner and must
// go through Assign. All other transitions (pickup, delivery, cancellation)
// go through here.
func (o *Order) ChangeStatus(newStatus Status) error {
	transitioned, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	if err = transitioned.ValidateCanHavePartner(o.partnerID != nil); err != nil {
		return err
	}

	o.status = transitioned
	o.touch()
	return nil
}

// Cancel abandons the order. Valid from any non-terminal status.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

func (o *Order) touch() {
	now := time.Now().UTC()
	// Guarantee the timestamp moves forward even on coarse clocks.
	if !now.After(o.updatedAt) {
		now = o.updatedAt.Add(time.Microsecond)
	}
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item", err)
	}
	o.itemID = itemID
	return nil
}

func (o *Order) setPartnerID(partnerID *kernel.UUID) error {
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return err
		}
	}
	o.partnerID = partnerID
	return nil
}

func (o *Order) setDropLocationID(dropLocationID kernel.UUID) error {
	if err := dropLocationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("drop location", err)
	}
	o.dropLocationID = dropLocationID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
