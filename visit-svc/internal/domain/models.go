package domain

import "time"

type Table struct {
	ID           int  `json:"id"`
	RestaurantID int  `json:"restaurant_id"`
	Number       int  `json:"number"`
	Capacity     int  `json:"capacity"`
	Deleted      bool `json:"-"`
}

type RestaurantSettings struct {
	ID                     int           `json:"id"`
	OwnerID                int           `json:"owner_id"`
	MinReservationDuration time.Duration `json:"min_reservation_duration"`
	ReservationDeposit     *float64      `json:"reservation_deposit,omitempty"`
}

// RequiredDeposit is the deposit a new reservation must pay, or nil when the
// restaurant takes none. A non-positive amount counts as none.
func (s RestaurantSettings) RequiredDeposit() *float64 {
	if s.ReservationDeposit == nil || *s.ReservationDeposit <= 0 {
		return nil
	}
	deposit := *s.ReservationDeposit
	return &deposit
}

// Visit is the root of a customer's occasion at a restaurant. StartTime is
// nil until the party is checked in; SlotStart and SlotEnd hold the table
// binding window.
type Visit struct {
	ID             int        `json:"id"`
	RestaurantID   int        `json:"restaurant_id"`
	ClientID       int        `json:"client_id"`
	ParticipantIDs []int      `json:"participant_ids"`
	Guests         int        `json:"guests"`
	TableID        int        `json:"table_id"`
	SlotStart      time.Time  `json:"slot_start"`
	SlotEnd        time.Time  `json:"slot_end"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Tip            *float64   `json:"tip,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// PartySize counts the guests, every participant and the creating client.
func (v *Visit) PartySize() int {
	return v.Guests + len(v.ParticipantIDs) + 1
}

func (v *Visit) Started() bool { return v.StartTime != nil }

func (v *Visit) Ended() bool { return v.EndTime != nil }

func (v *Visit) HasParticipant(userID int) bool {
	if v.ClientID == userID {
		return true
	}
	for _, id := range v.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

type RestaurantDecision struct {
	EmployeeID int       `json:"employee_id"`
	IsAccepted bool      `json:"is_accepted"`
	DecidedAt  time.Time `json:"decided_at"`
}

type Reservation struct {
	VisitID       int                 `json:"visit_id"`
	TableID       int                 `json:"table_id"`
	StartTime     time.Time           `json:"start_time"`
	EndTime       time.Time           `json:"end_time"`
	Deposit       *float64            `json:"deposit,omitempty"`
	DepositPaidAt *time.Time          `json:"deposit_paid_at,omitempty"`
	ReservedAt    time.Time           `json:"reserved_at"`
	Decision      *RestaurantDecision `json:"decision,omitempty"`
}

type MenuItem struct {
	ID            int     `json:"id"`
	RestaurantID  int     `json:"restaurant_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ActiveMenuIDs []int   `json:"active_menu_ids"`
}

type Transaction struct {
	ID          int       `json:"id"`
	Reference   string    `json:"reference"`
	UserID      int       `json:"user_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationRequest struct {
	RestaurantID   int
	ClientID       int
	Guests         int
	ParticipantIDs []int
	StartTime      time.Time
	EndTime        time.Time
}

type WalkInRequest struct {
	RestaurantID   int
	ClientID       int
	Guests         int
	ParticipantIDs []int
}

// VisitDetails is the read model returned to clients. Status is derived on
// every read and only present for visits with a reservation.
type VisitDetails struct {
	Visit       Visit              `json:"visit"`
	Reservation *Reservation       `json:"reservation,omitempty"`
	Status      *ReservationStatus `json:"status,omitempty"`
}
