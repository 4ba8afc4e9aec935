package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant-booking/settlement-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	allTimeKey  = "settlement:alltime"
	dailyKeyTTL = 7 * 24 * time.Hour
	rankingTTL  = 7 * 24 * time.Hour
)

func DailyKey(day string, restaurantID int) string {
	return fmt.Sprintf("settlement:daily:%s:%d", day, restaurantID)
}

func RankingKey(day string) string {
	return "settlement:ranking:" + day
}

func AllTimeKey() string {
	return allTimeKey
}

// RedisRevenueCache mirrors the ledger as running totals: a per-day counter
// per restaurant, a per-day ranking and an all-time ranking.
type RedisRevenueCache struct {
	rdb *redis.Client
}

func NewRedisRevenueCache(rdb *redis.Client) *RedisRevenueCache {
	return &RedisRevenueCache{rdb: rdb}
}

func (c *RedisRevenueCache) Add(ctx context.Context, msg domain.SettlementMessage) error {
	day := msg.Day()
	member := strconv.Itoa(msg.RestaurantID)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.IncrByFloat(ctx, DailyKey(day, msg.RestaurantID), msg.Amount)
		pipe.Expire(ctx, DailyKey(day, msg.RestaurantID), dailyKeyTTL)
		pipe.ZIncrBy(ctx, RankingKey(day), msg.Amount, member)
		pipe.Expire(ctx, RankingKey(day), rankingTTL)
		pipe.ZIncrBy(ctx, allTimeKey, msg.Amount, member)
		return nil
	})
	return err
}

func (c *RedisRevenueCache) DailyRevenue(ctx context.Context, day string, restaurantID int) (float64, bool, error) {
	return lookup(c.rdb.Get(ctx, DailyKey(day, restaurantID)).Float64())
}

func (c *RedisRevenueCache) AllTimeRevenue(ctx context.Context, restaurantID int) (float64, bool, error) {
	return lookup(c.rdb.ZScore(ctx, allTimeKey, strconv.Itoa(restaurantID)).Result())
}

func (c *RedisRevenueCache) TopDaily(ctx context.Context, day string, limit int) ([]domain.RankedRestaurant, error) {
	return c.top(ctx, RankingKey(day), limit)
}

func (c *RedisRevenueCache) TopAllTime(ctx context.Context, limit int) ([]domain.RankedRestaurant, error) {
	return c.top(ctx, allTimeKey, limit)
}

func (c *RedisRevenueCache) top(ctx context.Context, key string, limit int) ([]domain.RankedRestaurant, error) {
	result, err := c.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.RankedRestaurant, 0, len(result))
	for _, z := range result {
		restaurantID, err := strconv.Atoi(z.Member.(string))
		if err != nil {
			continue
		}
		top = append(top, domain.RankedRestaurant{RestaurantID: restaurantID, Total: z.Score})
	}
	return top, nil
}

func lookup(value float64, err error) (float64, bool, error) {
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}
