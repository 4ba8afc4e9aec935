package service

import (
	"context"
	"time"

	"restaurant-booking/settlement-svc/internal/domain"
	"restaurant-booking/settlement-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// SettlementLedger persists settlements. Record reports false when the
// message was already stored.
type SettlementLedger interface {
	Record(ctx context.Context, msg domain.SettlementMessage) (bool, error)
	Revenue(ctx context.Context, restaurantID int, since *time.Time) (float64, error)
	Top(ctx context.Context, since *time.Time, limit int) ([]domain.RankedRestaurant, error)
}

// RevenueCache keeps running totals. Lookups report ok=false on a miss.
type RevenueCache interface {
	Add(ctx context.Context, msg domain.SettlementMessage) error
	DailyRevenue(ctx context.Context, day string, restaurantID int) (float64, bool, error)
	AllTimeRevenue(ctx context.Context, restaurantID int) (float64, bool, error)
	TopDaily(ctx context.Context, day string, limit int) ([]domain.RankedRestaurant, error)
	TopAllTime(ctx context.Context, limit int) ([]domain.RankedRestaurant, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessSettlement(ctx context.Context, msg domain.SettlementMessage) error
}

type RevenueInterface interface {
	RestaurantRevenue(ctx context.Context, restaurantID int, period domain.Period) (*domain.RestaurantRevenue, error)
	TopRestaurants(ctx context.Context, period domain.Period, limit int) ([]domain.RankedRestaurant, error)
}

var (
	_ ConsumerInterface = (*Consumer)(nil)
	_ RevenueInterface  = (*RevenueService)(nil)

	_ SettlementLedger = (*storage.Ledger)(nil)
	_ RevenueCache     = (*storage.RedisRevenueCache)(nil)
	_ MessageReader    = (*kafka.Reader)(nil)
)
