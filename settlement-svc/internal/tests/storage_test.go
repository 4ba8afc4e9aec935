package tests

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"restaurant-booking/settlement-svc/internal/domain"
	"restaurant-booking/settlement-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockLedger(t *testing.T) (*storage.Ledger, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return storage.NewLedger(db), mock
}

func TestLedger_Record(t *testing.T) {
	ctx := context.Background()
	msg := depositMessage()
	insert := regexp.QuoteMeta("INSERT INTO restaurant_settlements")

	t.Run("first delivery is inserted", func(t *testing.T) {
		ledger, mock := newMockLedger(t)
		mock.ExpectExec(insert).
			WithArgs(msg.ID, "deposit", 3, 7, 25.0, msg.Timestamp).
			WillReturnResult(sqlmock.NewResult(1, 1))

		inserted, err := ledger.Record(ctx, msg)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("redelivery hits the unique message id", func(t *testing.T) {
		ledger, mock := newMockLedger(t)
		mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, 0))

		inserted, err := ledger.Record(ctx, msg)
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("database error", func(t *testing.T) {
		ledger, mock := newMockLedger(t)
		mock.ExpectExec(insert).WillReturnError(errors.New("connection reset"))

		_, err := ledger.Record(ctx, msg)
		assert.EqualError(t, err, "connection reset")
	})
}

func TestLedger_RevenueAndTop(t *testing.T) {
	ctx := context.Background()
	ledger, mock := newMockLedger(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0)")).
		WithArgs(3, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(125.5))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY restaurant_id")).
		WithArgs(sqlmock.AnyArg(), 2).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "total"}).
			AddRow(3, 125.5).
			AddRow(1, 40.0))

	total, err := ledger.Revenue(ctx, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 125.5, total)

	since := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	top, err := ledger.Top(ctx, &since, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.RankedRestaurant{
		{RestaurantID: 3, Total: 125.5},
		{RestaurantID: 1, Total: 40},
	}, top)
}

func TestLedger_EnsureSchema(t *testing.T) {
	ledger, mock := newMockLedger(t)
	for range storage.Schema {
		mock.ExpectExec(".+").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, ledger.EnsureSchema(context.Background()))
}

func newRevenueCache(t *testing.T) (*storage.RedisRevenueCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewRedisRevenueCache(rdb), mr
}

func TestRedisRevenueCache_Add(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRevenueCache(t)

	first := depositMessage()
	second := depositMessage()
	second.ID = "b2c3"
	second.Type = domain.KindOrder
	second.Amount = 14.5
	other := depositMessage()
	other.ID = "c3d4"
	other.RestaurantID = 1
	other.Amount = 60
	yesterday := depositMessage()
	yesterday.ID = "d4e5"
	yesterday.Timestamp = settledAt.Add(-24 * time.Hour)
	yesterday.Amount = 100

	for _, msg := range []domain.SettlementMessage{first, second, other, yesterday} {
		require.NoError(t, cache.Add(ctx, msg))
	}

	daily, hit, err := cache.DailyRevenue(ctx, "2026-03-14", 3)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 39.5, daily)

	allTime, hit, err := cache.AllTimeRevenue(ctx, 3)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 139.5, allTime)

	top, err := cache.TopDaily(ctx, "2026-03-14", 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.RankedRestaurant{
		{RestaurantID: 1, Total: 60},
		{RestaurantID: 3, Total: 39.5},
	}, top)

	top, err = cache.TopAllTime(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.RankedRestaurant{{RestaurantID: 3, Total: 139.5}}, top)

	assert.True(t, mr.Exists(storage.DailyKey("2026-03-14", 3)))
	assert.Equal(t, 7*24*time.Hour, mr.TTL(storage.RankingKey("2026-03-14")))
	assert.Equal(t, time.Duration(0), mr.TTL(storage.AllTimeKey()))
}

func TestRedisRevenueCache_Miss(t *testing.T) {
	ctx := context.Background()
	cache, _ := newRevenueCache(t)

	_, hit, err := cache.DailyRevenue(ctx, "2026-03-14", 3)
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = cache.AllTimeRevenue(ctx, 3)
	require.NoError(t, err)
	assert.False(t, hit)

	top, err := cache.TopAllTime(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}
