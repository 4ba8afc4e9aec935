package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"restaurant-booking/settlement-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

const (
	DefaultRetryBackoff = time.Second
	maxRetryBackoff     = 30 * time.Second
)

type Consumer struct {
	Reader MessageReader
	Ledger SettlementLedger
	Cache  RevenueCache
	Logger *slog.Logger

	// Backoff is the first wait before retrying a failed fetch or store.
	// It doubles per attempt up to 30s.
	Backoff time.Duration
}

func NewConsumer(reader MessageReader, ledger SettlementLedger, cache RevenueCache, logger *slog.Logger) *Consumer {
	return &Consumer{
		Reader:  reader,
		Ledger:  ledger,
		Cache:   cache,
		Logger:  logger,
		Backoff: DefaultRetryBackoff,
	}
}

// Start consumes until ctx is cancelled. The reader advances past every
// fetched message, so a message whose store fails is retried in place and
// its offset is committed only once it is stored or rejected as invalid.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("Starting Settlement Service consumer...")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("settlement consumer stopped")
				return
			}
			c.Logger.Warn("failed to read message", slog.String("error", err.Error()))
			if !c.wait(ctx, c.initialBackoff()) {
				return
			}
			continue
		}

		var msg domain.SettlementMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Logger.Warn("skipping malformed message",
				slog.Int64("offset", message.Offset),
				slog.String("error", err.Error()))
			c.commit(ctx, message)
			continue
		}

		if !c.processWithRetry(ctx, msg) {
			c.Logger.Info("settlement consumer stopped", slog.String("pending_message_id", msg.ID))
			return
		}
		c.commit(ctx, message)
	}
}

// processWithRetry reports false only when ctx ends before msg is settled.
func (c *Consumer) processWithRetry(ctx context.Context, msg domain.SettlementMessage) bool {
	backoff := c.initialBackoff()
	for attempt := 1; ; attempt++ {
		err := c.ProcessSettlement(ctx, msg)
		if err == nil || errors.Is(err, domain.ErrInvalidMessage) {
			return true
		}
		c.Logger.Error("failed to process settlement",
			slog.String("message_id", msg.ID),
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", backoff),
			slog.String("error", err.Error()))
		if !c.wait(ctx, backoff) {
			return false
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}

func (c *Consumer) initialBackoff() time.Duration {
	if c.Backoff <= 0 {
		return DefaultRetryBackoff
	}
	return c.Backoff
}

func (c *Consumer) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *Consumer) ProcessSettlement(ctx context.Context, msg domain.SettlementMessage) error {
	if err := msg.Validate(); err != nil {
		c.Logger.Warn("rejecting settlement",
			slog.String("message_id", msg.ID),
			slog.String("type", string(msg.Type)),
			slog.Int("restaurant_id", msg.RestaurantID))
		return err
	}

	inserted, err := c.Ledger.Record(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to record settlement: %w", err)
	}
	if !inserted {
		c.Logger.Info("duplicate settlement ignored", slog.String("message_id", msg.ID))
		return nil
	}

	if err := c.Cache.Add(ctx, msg); err != nil {
		c.Logger.Warn("revenue cache not updated",
			slog.String("message_id", msg.ID),
			slog.String("error", err.Error()))
	}

	c.Logger.Info("settlement recorded",
		slog.String("message_id", msg.ID),
		slog.String("type", string(msg.Type)),
		slog.Int("restaurant_id", msg.RestaurantID),
		slog.Float64("amount", msg.Amount))
	return nil
}

func (c *Consumer) commit(ctx context.Context, message kafka.Message) {
	if err := c.Reader.CommitMessages(ctx, message); err != nil {
		c.Logger.Warn("failed to commit offset", slog.Int64("offset", message.Offset), slog.String("error", err.Error()))
	}
}
