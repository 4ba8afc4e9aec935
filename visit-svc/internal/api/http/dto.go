package httpapi

import (
	"time"

	"restaurant-booking/visit-svc/internal/domain"
)

type createReservationRequest struct {
	RestaurantID   int       `json:"restaurant_id" validate:"required,gt=0"`
	Guests         int       `json:"guests" validate:"gte=0,lte=100"`
	ParticipantIDs []int     `json:"participant_ids" validate:"omitempty,dive,gt=0"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

func (req createReservationRequest) toDomain(clientID int) domain.ReservationRequest {
	return domain.ReservationRequest{
		RestaurantID:   req.RestaurantID,
		ClientID:       clientID,
		Guests:         req.Guests,
		ParticipantIDs: req.ParticipantIDs,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	}
}

type createWalkInRequest struct {
	RestaurantID   int   `json:"restaurant_id" validate:"required,gt=0"`
	Guests         int   `json:"guests" validate:"gte=0,lte=100"`
	ParticipantIDs []int `json:"participant_ids" validate:"omitempty,dive,gt=0"`
}

type addParticipantRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
}

type decisionRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

type closeVisitRequest struct {
	Tip *float64 `json:"tip" validate:"omitempty,gte=0"`
}

type orderItemRequest struct {
	MenuItemID int `json:"menu_item_id" validate:"required,gt=0"`
	Quantity   int `json:"quantity" validate:"required,gt=0,lte=99"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Note  *string            `json:"note" validate:"omitempty,max=200"`
}

func (req createOrderRequest) items() []domain.OrderItemRequest {
	items := make([]domain.OrderItemRequest, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItemRequest{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}
	return items
}

type itemStatusRequest struct {
	ItemID int    `json:"item_id" validate:"required,gt=0"`
	Status string `json:"status" validate:"required,oneof=InProgress Taken Cancelled"`
}

type updateStatusRequest struct {
	Items []itemStatusRequest `json:"items" validate:"required,min=1,dive"`
}

func (req updateStatusRequest) updates() []domain.ItemStatusUpdate {
	updates := make([]domain.ItemStatusUpdate, len(req.Items))
	for i, item := range req.Items {
		updates[i] = domain.ItemStatusUpdate{ItemID: item.ItemID, Status: domain.ItemStatus(item.Status)}
	}
	return updates
}

type assignEmployeesRequest struct {
	EmployeeIDs []int `json:"employee_ids" validate:"required,min=1,dive,gt=0"`
}
