package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidMessage = errors.New("invalid settlement message")
	ErrInvalidPeriod  = errors.New("period must be today or all")
	ErrInvalidInput   = errors.New("invalid input")
)

type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindOrder      Kind = "order"
	KindVisitClose Kind = "visit_close"
)

// SettlementMessage is one payout event read from the settlement topic.
type SettlementMessage struct {
	ID           string    `json:"id"`
	Type         Kind      `json:"type"`
	RestaurantID int       `json:"restaurant_id"`
	VisitID      int       `json:"visit_id"`
	Amount       float64   `json:"amount"`
	Timestamp    time.Time `json:"timestamp"`
}

func (m SettlementMessage) Validate() error {
	switch m.Type {
	case KindDeposit, KindOrder, KindVisitClose:
	default:
		return ErrInvalidMessage
	}
	if m.ID == "" || m.RestaurantID <= 0 || m.Amount <= 0 {
		return ErrInvalidMessage
	}
	return nil
}

// Day is the UTC calendar day a settlement counts towards.
func (m SettlementMessage) Day() string {
	return m.Timestamp.UTC().Format(DayLayout)
}

const DayLayout = "2006-01-02"

type Period string

const (
	PeriodToday Period = "today"
	PeriodAll   Period = "all"
)

func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case "", PeriodAll:
		return PeriodAll, nil
	case PeriodToday:
		return PeriodToday, nil
	}
	return "", ErrInvalidPeriod
}

type Source string

const (
	SourceCache    Source = "cache"
	SourceDatabase Source = "database"
)

type RestaurantRevenue struct {
	RestaurantID int     `json:"restaurant_id"`
	Period       Period  `json:"period"`
	Total        float64 `json:"total"`
	Source       Source  `json:"source"`
}

type RankedRestaurant struct {
	RestaurantID int     `json:"restaurant_id"`
	Total        float64 `json:"total"`
}
