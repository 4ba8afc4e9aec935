package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant-booking/visit-svc/internal/domain"
	"restaurant-booking/visit-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPaymentLock(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	lock := storage.NewRedisPaymentLock(client, 30*time.Second)
	key := lock.PaymentLockKey(7)
	assert.Equal(t, "payment:visit:7", key)

	acquired, err := lock.Acquire(ctx, key, "first")
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.Equal(t, 30*time.Second, server.TTL(key))

	acquired, err = lock.Acquire(ctx, key, "second")
	require.NoError(t, err)
	assert.False(t, acquired, "second payment must not get the lock")

	require.NoError(t, lock.Release(ctx, key, "first"))
	acquired, err = lock.Acquire(ctx, key, "second")
	require.NoError(t, err)
	assert.True(t, acquired)

	server.FastForward(31 * time.Second)
	assert.False(t, server.Exists(key), "lock expires with its ttl")
}

func TestRedisPaymentLock_ReleaseKeepsForeignLease(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	lock := storage.NewRedisPaymentLock(client, 30*time.Second)
	key := lock.PaymentLockKey(7)

	acquired, err := lock.Acquire(ctx, key, "slow-request")
	require.NoError(t, err)
	require.True(t, acquired)

	server.FastForward(31 * time.Second)
	acquired, err = lock.Acquire(ctx, key, "next-request")
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, lock.Release(ctx, key, "slow-request"))
	value, err := server.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "next-request", value)

	require.NoError(t, lock.Release(ctx, key, "next-request"))
	assert.False(t, server.Exists(key))
}

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaSettlementPublisher_Notify(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaSettlementPublisher(writer)

	err := publisher.Notify(context.Background(), domain.Settlement{
		Kind:         domain.SettlementDeposit,
		RestaurantID: 3,
		VisitID:      7,
		Amount:       25,
	})

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("3"), writer.messages[0].Key)

	var msg domain.SettlementMessage
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &msg))
	assert.Equal(t, domain.SettlementDeposit, msg.Type)
	assert.Equal(t, 3, msg.RestaurantID)
	assert.Equal(t, 7, msg.VisitID)
	assert.Equal(t, 25.0, msg.Amount)
	assert.False(t, msg.Timestamp.IsZero())
	_, err = uuid.Parse(msg.ID)
	assert.NoError(t, err)
}

func TestKafkaSettlementPublisher_WriterError(t *testing.T) {
	publisher := storage.NewKafkaSettlementPublisher(&recordingWriter{err: errors.New("leader not available")})

	err := publisher.Notify(context.Background(), domain.Settlement{Kind: domain.SettlementOrder, RestaurantID: 1, Amount: 1})

	assert.ErrorContains(t, err, "leader not available")
}
