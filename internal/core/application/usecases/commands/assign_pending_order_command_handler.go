package commands

import (
	"context"
	"errors"

	"campusdrop/internal/core/domain/services"
	"campusdrop/internal/core/ports"
	"campusdrop/internal/pkg/errs"
)

var (
	// ErrNoPendingOrders is returned when no order is waiting for assignment.
	ErrNoPendingOrders = errors.New("no pending orders found")
)

// AssignPendingOrderCommandHandler matches the oldest requested order with
// an eligible partner. Used by the background assignment job; the expected
// business outcomes (nothing pending, nobody eligible) surface as sentinel
// errors so the job can skip them in its logs.
type AssignPendingOrderCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.PartnerAssigner
	publisher  ports.OrderChangedPublisher
}

// NewAssignPendingOrderCommandHandler creates a handler for pending-order
// assignment. Requires a UoWFactory for coordinating the order write with
// the partner and item reads.
func NewAssignPendingOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderChangedPublisher,
) AssignPendingOrderCommandHandler {
	return AssignPendingOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewPartnerAssigner(),
		publisher:  publisher,
	}
}

// Handle processes the pending-order assignment command.
// Retrieves the oldest requested order, re-runs the assignment pipeline
// for its item, and persists the transition to assigned. Returns
// ErrNoPendingOrders when the queue is empty and
// services.ErrNoEligiblePartner when the filter still yields nothing.
func (h AssignPendingOrderCommandHandler) Handle(ctx context.Context, cmd AssignPendingOrderCommand) error {
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

	pending, err := uow.OrderRepository().GetFirstInRequestedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	it, err := uow.ItemRepository().Get(ctx, pending.ItemID())
	if err != nil {
		return err
	}

	partners, err := uow.PartnerRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	assignment, err := h.assigner.Assign(it, partners)
	if err != nil {
		return err
	}

	if err = pending.Assign(*assignment.PartnerID); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, pending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: a lost event only delays a subscriber's refresh.
	_ = h.publisher.Publish(ctx, ports.OrderChangedEvent{
		OrderID:   pending.ID(),
		Status:    pending.Status(),
		UpdatedAt: pending.UpdatedAt(),
	})

	return nil
}
