package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant-booking/settlement-svc/internal/domain"
)

const DefaultTopLimit = 10

// RevenueService answers revenue queries from the Redis aggregates and falls
// back to the settlement ledger when Redis misses or is unavailable.
type RevenueService struct {
	ledger SettlementLedger
	cache  RevenueCache
	logger *slog.Logger
	now    func() time.Time
}

func NewRevenueService(ledger SettlementLedger, cache RevenueCache, logger *slog.Logger, now func() time.Time) *RevenueService {
	if now == nil {
		now = time.Now
	}
	return &RevenueService{ledger: ledger, cache: cache, logger: logger, now: now}
}

func (s *RevenueService) RestaurantRevenue(ctx context.Context, restaurantID int, period domain.Period) (*domain.RestaurantRevenue, error) {
	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurant id", domain.ErrInvalidInput)
	}

	var total float64
	var hit bool
	var err error
	switch period {
	case domain.PeriodToday:
		total, hit, err = s.cache.DailyRevenue(ctx, s.today(), restaurantID)
	case domain.PeriodAll:
		total, hit, err = s.cache.AllTimeRevenue(ctx, restaurantID)
	default:
		return nil, domain.ErrInvalidPeriod
	}
	if err != nil {
		s.logger.Warn("revenue cache unavailable", slog.String("error", err.Error()))
	}
	if err == nil && hit {
		return &domain.RestaurantRevenue{RestaurantID: restaurantID, Period: period, Total: total, Source: domain.SourceCache}, nil
	}

	total, err = s.ledger.Revenue(ctx, restaurantID, s.since(period))
	if err != nil {
		return nil, err
	}
	return &domain.RestaurantRevenue{RestaurantID: restaurantID, Period: period, Total: total, Source: domain.SourceDatabase}, nil
}

func (s *RevenueService) TopRestaurants(ctx context.Context, period domain.Period, limit int) ([]domain.RankedRestaurant, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	var top []domain.RankedRestaurant
	var err error
	switch period {
	case domain.PeriodToday:
		top, err = s.cache.TopDaily(ctx, s.today(), limit)
	case domain.PeriodAll:
		top, err = s.cache.TopAllTime(ctx, limit)
	default:
		return nil, domain.ErrInvalidPeriod
	}
	if err != nil {
		s.logger.Warn("revenue cache unavailable", slog.String("error", err.Error()))
	}
	if err == nil && len(top) > 0 {
		return top, nil
	}

	top, err = s.ledger.Top(ctx, s.since(period), limit)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []domain.RankedRestaurant{}
	}
	return top, nil
}

func (s *RevenueService) today() string {
	return s.now().UTC().Format(domain.DayLayout)
}

func (s *RevenueService) since(period domain.Period) *time.Time {
	if period != domain.PeriodToday {
		return nil
	}
	now := s.now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return &start
}
