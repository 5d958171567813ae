package commands

import (
	"context"
	"errors"

	"campusdrop/internal/core/domain/model/order"
	"campusdrop/internal/core/domain/services"
	"campusdrop/internal/core/ports"
	"campusdrop/internal/pkg/errs"
)

// CreateOrderResult carries the outcome of order creation back to the
// caller: the persisted order on success and, in both outcomes, the
// human-readable assignment reason produced by the partner assigner.
type CreateOrderResult struct {
	Order            *order.Order
	AssignmentReason string
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Assignment is synchronous with creation: the handler resolves the
// requesting user, runs the partner assigner, and persists the order
// already in assigned status. On assignment failure nothing is written and
// the assigner's diagnostic reason is propagated verbatim.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	identity   ports.IdentityProvider
	assigner   services.PartnerAssigner
	publisher  ports.OrderChangedPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory for transactional persistence, an identity
// provider to resolve the requesting user, and a publisher for change
// notifications.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	identity ports.IdentityProvider,
	publisher ports.OrderChangedPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		assigner:   services.NewPartnerAssigner(),
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
//
// Steps: verify the requesting user is authenticated, load the item, run
// the assignment pipeline over the full partner set, persist the order in
// assigned status, and publish a change event. Errors are returned before
// any write happens: an unauthenticated caller, a missing or unavailable
// item, or an empty eligible-partner set all leave the store untouched. In the
// no-eligible-partner case the returned result still carries the
// diagnostic reason.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	userID, err := h.identity.CurrentUser(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	it, err := uow.ItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	// A delisted item is indistinguishable from a missing one to the caller.
	if !it.Available() {
		return CreateOrderResult{}, errs.NewObjectNotFoundError("item", cmd.ItemID().String())
	}

	partners, err := uow.PartnerRepository().GetAll(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	assignment, err := h.assigner.Assign(it, partners)
	if errors.Is(err, services.ErrNoEligiblePartner) {
		return CreateOrderResult{AssignmentReason: assignment.Reason}, err
	}
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), userID, cmd.ItemID(), cmd.DropLocationID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = newOrder.Assign(*assignment.PartnerID); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	// Best effort: a lost event only delays a subscriber's refresh.
	_ = h.publisher.Publish(ctx, ports.OrderChangedEvent{
		OrderID:   newOrder.ID(),
		Status:    newOrder.Status(),
		UpdatedAt: newOrder.UpdatedAt(),
	})

	return CreateOrderResult{
		Order:            newOrder,
		AssignmentReason: assignment.Reason,
	}, nil
}
