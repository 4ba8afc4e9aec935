package tests

import (
	"context"
	"fmt"
	"time"

	"restaurant-booking/visit-svc/internal/domain"
)

var fixedNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 14, hour, minute, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// passthroughTx runs fn directly and can simulate a failed COMMIT.
type passthroughTx struct {
	commitErr error
}

func (p passthroughTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	if p.commitErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrCommitFailed, p.commitErr)
	}
	return nil
}
