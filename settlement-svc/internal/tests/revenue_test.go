package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-booking/logging"
	"restaurant-booking/settlement-svc/internal/domain"
	"restaurant-booking/settlement-svc/internal/mocks"
	"restaurant-booking/settlement-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time { return settledAt }

var midnight = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

func TestRevenueService_RestaurantRevenue(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		period       domain.Period
		prepareMocks func(ledger *mocks.SettlementLedger, cache *mocks.RevenueCache)
		want         *domain.RestaurantRevenue
		wantErr      error
	}{
		{
			name:   "today from cache",
			period: domain.PeriodToday,
			prepareMocks: func(ledger *mocks.SettlementLedger, cache *mocks.RevenueCache) {
				cache.On("DailyRevenue", ctx, "2026-03-14", 3).Return(55.5, true, nil).Once()
			},
			want: &domain.RestaurantRevenue{RestaurantID: 3, Period: domain.PeriodToday, Total: 55.5, Source: domain.SourceCache},
		},
		{
			name:   "today falls back to ledger on miss",
			period: domain.PeriodToday,
			prepareMocks: func(ledger *mocks.SettlementLedger, cache *mocks.RevenueCache) {
				cache.On("DailyRevenue", ctx, "2026-03-14", 3).Return(0.0, false, nil).Once()
				ledger.On("Revenue", ctx, 3, &midnight).Return(40.0, nil).Once()
			},
			want: &domain.RestaurantRevenue{RestaurantID: 3, Period: domain.PeriodToday, Total: 40, Source: domain.SourceDatabase},
		},
		{
			name:   "all time falls back to ledger when redis is down",
			period: domain.PeriodAll,
			prepareMocks: func(ledger *mocks.SettlementLedger, cache *mocks.RevenueCache) {
				cache.On("AllTimeRevenue", ctx, 3).Return(0.0, false, errors.New("connection refused")).Once()
				ledger.On("Revenue", ctx, 3, (*time.Time)(nil)).Return(900.0, nil).Once()
			},
			want: &domain.RestaurantRevenue{RestaurantID: 3, Period: domain.PeriodAll, Total: 900, Source: domain.SourceDatabase},
		},
		{
			name:         "unknown period",
			period:       "week",
			prepareMocks: func(*mocks.SettlementLedger, *mocks.RevenueCache) {},
			wantErr:      domain.ErrInvalidPeriod,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ledger := mocks.NewSettlementLedger(t)
			cache := mocks.NewRevenueCache(t)
			testCase.prepareMocks(ledger, cache)
			svc := service.NewRevenueService(ledger, cache, logging.Discard(), fixedClock)

			got, err := svc.RestaurantRevenue(ctx, 3, testCase.period)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestRevenueService_TopRestaurants(t *testing.T) {
	ctx := context.Background()

	t.Run("ranking from cache", func(t *testing.T) {
		ledger := mocks.NewSettlementLedger(t)
		cache := mocks.NewRevenueCache(t)
		ranking := []domain.RankedRestaurant{{RestaurantID: 3, Total: 90}, {RestaurantID: 1, Total: 20}}
		cache.On("TopDaily", ctx, "2026-03-14", 5).Return(ranking, nil).Once()

		got, err := service.NewRevenueService(ledger, cache, logging.Discard(), fixedClock).
			TopRestaurants(ctx, domain.PeriodToday, 5)

		require.NoError(t, err)
		assert.Equal(t, ranking, got)
	})

	t.Run("empty cache falls back to ledger", func(t *testing.T) {
		ledger := mocks.NewSettlementLedger(t)
		cache := mocks.NewRevenueCache(t)
		cache.On("TopAllTime", ctx, service.DefaultTopLimit).Return([]domain.RankedRestaurant{}, nil).Once()
		ledger.On("Top", ctx, (*time.Time)(nil), service.DefaultTopLimit).Return(nil, nil).Once()

		got, err := service.NewRevenueService(ledger, cache, logging.Discard(), fixedClock).
			TopRestaurants(ctx, domain.PeriodAll, 0)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}
