package commands

import (
	"context"

	"campusdrop/internal/core/ports"
)

// UpdateOrderStatusCommandHandler advances an order along its lifecycle.
// The aggregate enforces the transition table, so out-of-order moves and
// exits from terminal states are rejected here rather than written through.
// Each successful update refreshes the last-updated timestamp and notifies
// live subscribers through the change publisher.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderChangedPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory for transactional persistence and a
// publisher for change notifications.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderChangedPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
// Loads the order, performs the transition through the aggregate, persists
// the result, and publishes an order-changed event after commit.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: a lost event only delays a subscriber's refresh.
	_ = h.publisher.Publish(ctx, ports.OrderChangedEvent{
		OrderID:   o.ID(),
		Status:    o.Status(),
		UpdatedAt: o.UpdatedAt(),
	})

	return nil
}
