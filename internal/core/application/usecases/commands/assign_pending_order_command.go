package commands

import (
	"errors"

	"campusdrop/internal/pkg/guard"
)

var ErrAssignPendingOrderCommandIsNotConstructed = errors.New(
	"AssignPendingOrderCommand must be created via NewAssignPendingOrderCommand constructor",
)

// AssignPendingOrderCommand triggers partner assignment for the oldest
// order still in requested status. The synchronous creation path assigns
// immediately; this command services orders left unassigned when no
// partner was eligible at request time and one may have freed up since.
type AssignPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrderCommand creates a new parameterless command to
// trigger pending-order assignment.
func NewAssignPendingOrderCommand() AssignPendingOrderCommand {
	return AssignPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPendingOrderCommandIsNotConstructed if validation fails.
func (c *AssignPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrderCommandIsNotConstructed)
}
