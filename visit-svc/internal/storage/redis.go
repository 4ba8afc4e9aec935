package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// releaseLock deletes the key only while it still holds the caller's token,
// so a lease that expired and was taken over is left alone.
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisPaymentLock marks a visit as having a payment in flight so a second
// submission fails fast instead of queueing on the row lock.
type RedisPaymentLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPaymentLock(client *redis.Client, ttl time.Duration) *RedisPaymentLock {
	return &RedisPaymentLock{Client: client, TTL: ttl}
}

func (l *RedisPaymentLock) PaymentLockKey(visitID int) string {
	return "payment:visit:" + strconv.Itoa(visitID)
}

func (l *RedisPaymentLock) Acquire(ctx context.Context, key, token string) (bool, error) {
	return l.Client.SetNX(ctx, key, token, l.TTL).Result()
}

func (l *RedisPaymentLock) Release(ctx context.Context, key, token string) error {
	return releaseLock.Run(ctx, l.Client, []string{key}, token).Err()
}
