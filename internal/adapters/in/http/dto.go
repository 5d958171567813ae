package http

import (
	"time"

	"campusdrop/internal/core/application/usecases/queries"
	"campusdrop/internal/core/domain/model/kernel"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body for placing a delivery request.
type CreateOrderRequest struct {
	ItemID         string `json:"item_id"`
	DropLocationID string `json:"drop_location_id"`
}

// CreateOrderResponse reports the created order and the assignment
// outcome message.
type CreateOrderResponse struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	PartnerID string    `json:"partner_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateOrderStatusRequest is the JSON body for progressing an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ItemResponse is the JSON projection of a catalog item.
type ItemResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	PickupLocationID *string `json:"pickup_location_id"`
	WeightKg         float64 `json:"weight_kg"`
	Fragile          bool    `json:"fragile"`
}

// LocationResponse is the JSON projection of a campus location.
type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// PartnerResponse is the JSON projection of a delivery partner.
type PartnerResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	CurrentLocationID *string `json:"current_location_id"`
	MaxWeightKg       float64 `json:"max_weight_kg"`
	CanHandleFragile  bool    `json:"can_handle_fragile"`
	Available         bool    `json:"is_available"`
}

// OrderResponse is the JSON projection of an order with joined details.
type OrderResponse struct {
	ID           string                 `json:"id"`
	Status       string                 `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	Item         *OrderItemResponse     `json:"item"`
	Partner      *OrderPartnerResponse  `json:"partner"`
	DropLocation *OrderLocationResponse `json:"drop_location"`
}

// OrderItemResponse is the item projection embedded in an order view.
type OrderItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	WeightKg float64 `json:"weight_kg"`
	Fragile  bool    `json:"fragile"`
}

// OrderPartnerResponse is the partner projection embedded in an order view.
type OrderPartnerResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MaxWeightKg float64 `json:"max_weight_kg"`
}

// OrderLocationResponse is the location projection embedded in an order view.
type OrderLocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func orderDetailsResponse(details queries.OrderDetails) OrderResponse {
	response := OrderResponse{
		ID:        details.ID.String(),
		Status:    details.Status,
		CreatedAt: details.CreatedAt,
		UpdatedAt: details.UpdatedAt,
	}

	if details.Item != nil {
		response.Item = &OrderItemResponse{
			ID:       details.Item.ID.String(),
			Name:     details.Item.Name,
			Category: details.Item.Category,
			WeightKg: details.Item.WeightKg,
			Fragile:  details.Item.Fragile,
		}
	}

	if details.Partner != nil {
		response.Partner = &OrderPartnerResponse{
			ID:          details.Partner.ID.String(),
			Name:        details.Partner.Name,
			MaxWeightKg: details.Partner.MaxWeightKg,
		}
	}

	if details.DropLocation != nil {
		response.DropLocation = &OrderLocationResponse{
			ID:   details.DropLocation.ID.String(),
			Name: details.DropLocation.Name,
			Type: details.DropLocation.Type,
		}
	}

	return response
}
