// Package http exposes the application's use cases over a JSON REST API.
// The server coordinates between HTTP handlers and application command
// and query handlers; request authentication happens in middleware.
package http

import (
	"errors"
	"net/http"

	"campusdrop/internal/core/application/usecases/commands"
	"campusdrop/internal/core/application/usecases/queries"
	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/order"
	"campusdrop/internal/core/domain/services"
	"campusdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the delivery API.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getItemsHandler      queries.GetItemsQueryHandler
	getLocationsHandler  queries.GetLocationsQueryHandler
	getPartnersHandler   queries.GetPartnersQueryHandler
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	getOrderByIDHandler  queries.GetOrderByIDQueryHandler

	identity ContextIdentityProvider
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getItemsHandler queries.GetItemsQueryHandler,
	getLocationsHandler queries.GetLocationsQueryHandler,
	getPartnersHandler queries.GetPartnersQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getItemsHandler:          getItemsHandler,
		getLocationsHandler:      getLocationsHandler,
		getPartnersHandler:       getPartnersHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		identity:                 NewContextIdentityProvider(),
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
// Catalog listings are public; order endpoints require a valid token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/items", s.GetItems)
	api.GET("/locations", s.GetLocations)
	api.GET("/partners", s.GetPartners)

	orders := api.Group("/orders", Authenticate(jwtSecret))
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrders)
	orders.GET("/:id", s.GetOrderByID)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetItems handles GET /api/v1/items - lists available catalog items.
func (s *Server) GetItems(ctx echo.Context) error {
	items, err := s.getItemsHandler.Handle(ctx.Request().Context(), queries.NewGetItemsQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]ItemResponse, len(items))
	for i, it := range items {
		response[i] = ItemResponse{
			ID:               it.ID.String(),
			Name:             it.Name,
			Category:         it.Category,
			PickupLocationID: optionalUUIDString(it.PickupLocationID),
			WeightKg:         it.WeightKg,
			Fragile:          it.Fragile,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLocations handles GET /api/v1/locations - lists campus locations.
// An optional "exclude" query parameter leaves one location out, which
// clients use to keep an item's pickup point out of the drop-off choices.
func (s *Server) GetLocations(ctx echo.Context) error {
	query := queries.NewGetLocationsQuery()

	if exclude := ctx.QueryParam("exclude"); exclude != "" {
		excludeID, err := kernel.UUIDFromString(exclude)
		if err != nil {
			return errorJSON(ctx, err)
		}
		query, err = queries.NewGetDropLocationsQuery(excludeID)
		if err != nil {
			return errorJSON(ctx, err)
		}
	}

	locations, err := s.getLocationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]LocationResponse, len(locations))
	for i, loc := range locations {
		response[i] = LocationResponse{
			ID:   loc.ID.String(),
			Name: loc.Name,
			Type: loc.Type,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPartners handles GET /api/v1/partners - lists delivery partners.
func (s *Server) GetPartners(ctx echo.Context) error {
	partners, err := s.getPartnersHandler.Handle(ctx.Request().Context(), queries.NewGetPartnersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		response[i] = PartnerResponse{
			ID:                p.ID.String(),
			Name:              p.Name,
			CurrentLocationID: optionalUUIDString(p.CurrentLocationID),
			MaxWeightKg:       p.MaxWeightKg,
			CanHandleFragile:  p.CanHandleFragile,
			Available:         p.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a delivery request.
// The order is persisted already matched with a partner; when no partner
// qualifies nothing is stored and the assignment diagnostic is returned.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemID, err := kernel.UUIDFromString(request.ItemID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	dropLocationID, err := kernel.UUIDFromString(request.DropLocationID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), itemID, dropLocationID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, services.ErrNoEligiblePartner) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: result.AssignmentReason,
		})
	}
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:   result.Order.ID().String(),
		Status:    result.Order.Status().String(),
		PartnerID: result.Order.PartnerID().String(),
		Message:   result.AssignmentReason,
		CreatedAt: result.Order.CreatedAt(),
	})
}

// GetOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID, err := s.identity.CurrentUser(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, details := range orders {
		response[i] = orderDetailsResponse(details)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves one order.
// A path segment that does not parse as a UUID cannot name an existing
// order, so it reports NotFound rather than a validation failure.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, errs.NewObjectNotFoundErrorWithCause("order", ctx.Param("id"), err))
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	details, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailsResponse(details))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - progresses
// an order through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorJSON maps application and domain errors onto HTTP status codes.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, order.ErrPartnerAlreadyAssigned):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
