package order

import (
	"errors"
	"fmt"

	"campusdrop/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is
// not allowed by the lifecycle transition table.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table:
//
//	requested ──> assigned ──> picked_up ──> delivered   (terminal)
//	     │             │            │
//	     └─────────────┴────────────┴──────> cancelled   (terminal)
//
// The forward path is strictly ordered; cancelled is reachable from any
// non-terminal state. Terminal states allow no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status of a delivery request before a
	// partner has been assigned. The synchronous creation path moves
	// through it immediately; orders persisted in this status are picked
	// up by the pending-assignment job.
	Requested

	// Assigned indicates a delivery partner has been selected for the order.
	Assigned

	// PickedUp indicates the partner has collected the item.
	PickedUp

	// Delivered indicates the item reached its drop location. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal, reachable
	// from any non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Requested: "requested",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "requested",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// allowedTransitions is the explicit transition table for the order
// lifecycle. Absent keys (terminal states) allow no transitions.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Requested: {Assigned, Cancelled},
		Assigned:  {PickedUp, Cancelled},
		PickedUp:  {Delivered, Cancelled},
	}
}

// StatusFromString parses the persistence representation of a status.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence name of the status, e.g. "picked_up".
// Invalid values render as "unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving from
// this status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition.
//
// Returns:
//   - (target, nil) when the transition table allows the move
//   - (Unknown, error wrapping ErrInvalidStatusTransition) otherwise
//
// Out-of-order moves and exits from terminal states are rejected.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, s, target)
	}

	return target, nil
}

// ValidateCanHavePartner validates the consistency between order status and
// partner assignment.
//
// Rules:
//   - Requested orders must not have a partner assigned
//   - Assigned, PickedUp, and Delivered orders must have a partner
//   - Cancelled orders may be in either state (cancellation can happen
//     before or after assignment)
func (s Status) ValidateCanHavePartner(hasPartner bool) error {
	if s == Cancelled {
		return nil
	}

	if hasPartner && s == Requested {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a partner", s))
	}

	if !hasPartner && (s == Assigned || s == PickedUp || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no partner", s))
	}

	return nil
}
