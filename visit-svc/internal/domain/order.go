package domain

import "time"

type ItemStatus string

const (
	ItemInProgress ItemStatus = "InProgress"
	ItemTaken      ItemStatus = "Taken"
	ItemCancelled  ItemStatus = "Cancelled"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemInProgress, ItemTaken, ItemCancelled:
		return true
	}
	return false
}

// Final reports whether no further transition is allowed out of s.
func (s ItemStatus) Final() bool {
	return s == ItemTaken || s == ItemCancelled
}

type OrderItem struct {
	ID         int        `json:"id"`
	OrderID    int        `json:"order_id"`
	MenuItemID int        `json:"menu_item_id"`
	Quantity   int        `json:"quantity"`
	Price      float64    `json:"price"`
	Status     ItemStatus `json:"status"`
}

type Order struct {
	ID           int         `json:"id"`
	VisitID      int         `json:"visit_id"`
	RestaurantID int         `json:"restaurant_id"`
	ClientID     int         `json:"client_id"`
	Note         *string     `json:"note,omitempty"`
	EmployeeIDs  []int       `json:"employee_ids"`
	PaidAt       *time.Time  `json:"paid_at,omitempty"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (o *Order) Item(itemID int) (*OrderItem, bool) {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i], true
		}
	}
	return nil, false
}

// Total is the frozen price of every item that was not cancelled.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		if item.Status == ItemCancelled {
			continue
		}
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CanBeCancelled reports whether the client may withdraw the whole order.
func (o *Order) CanBeCancelled() bool {
	for _, item := range o.Items {
		if item.Status != ItemInProgress {
			return false
		}
	}
	return true
}

// CheckClientCancel validates a client withdrawing a single item.
func CheckClientCancel(item OrderItem) error {
	if item.Status != ItemInProgress {
		return ErrItemAlreadyFinal
	}
	return nil
}

// CheckStaffTransition validates a staff status change. Staff may move an
// item freely while it is in progress; terminal states only accept a repeat
// of themselves.
func CheckStaffTransition(from, to ItemStatus) error {
	if !to.Valid() {
		return ErrInvalidInput
	}
	if from.Final() && from != to {
		return ErrItemAlreadyFinal
	}
	return nil
}

type OrderItemRequest struct {
	MenuItemID int
	Quantity   int
}

type ItemStatusUpdate struct {
	ItemID int
	Status ItemStatus
}

type SettlementKind string

const (
	SettlementDeposit    SettlementKind = "deposit"
	SettlementOrder      SettlementKind = "order"
	SettlementVisitClose SettlementKind = "visit_close"
)

// Settlement is the payout owed to a restaurant after a wallet debit.
type Settlement struct {
	Kind         SettlementKind
	RestaurantID int
	VisitID      int
	Amount       float64
}

// SettlementMessage is the wire format on the settlement topic.
type SettlementMessage struct {
	ID           string         `json:"id"`
	Type         SettlementKind `json:"type"`
	RestaurantID int            `json:"restaurant_id"`
	VisitID      int            `json:"visit_id"`
	Amount       float64        `json:"amount"`
	Timestamp    time.Time      `json:"timestamp"`
}
