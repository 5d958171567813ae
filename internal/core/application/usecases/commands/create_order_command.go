package commands

import (
	"errors"

	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a user's request to have an item delivered
// to a drop location. The requesting user is not part of the command; it is
// resolved from the request context by the handler's identity provider.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	itemID         kernel.UUID
	dropLocationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to request delivery of an item.
// All identifiers must be valid UUIDs.
func NewCreateOrderCommand(orderID, itemID, dropLocationID kernel.UUID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setDropLocationID(dropLocationID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order to create.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the requested item.
func (c CreateOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

// DropLocationID returns the identifier of the delivery destination.
func (c CreateOrderCommand) DropLocationID() kernel.UUID {
	return c.dropLocationID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateOrderCommand) setDropLocationID(dropLocationID kernel.UUID) error {
	if err := dropLocationID.Validate(); err != nil {
		return err
	}
	c.dropLocationID = dropLocationID
	return nil
}
