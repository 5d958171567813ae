// Package order contains the Order aggregate and its status state machine.
// An order is a user's request to have an item delivered to a campus
// location; its lifecycle runs from requested through assigned, picked_up,
// and delivered, with cancellation possible from any non-terminal state.
package order
