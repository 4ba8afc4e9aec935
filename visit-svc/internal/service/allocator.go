package service

import (
	"context"
	"fmt"
	"time"

	"restaurant-booking/visit-svc/internal/domain"
)

const DefaultMinReservationDuration = 30 * time.Minute

// TableAllocator picks the first table, by ascending number, that can seat
// the party and has no non-declined booking overlapping [start, end).
// It only reads; callers bind the table inside their own transaction so the
// storage exclusion constraint catches races at write time.
type TableAllocator struct {
	restaurants RestaurantRepository
	minDuration time.Duration
}

func NewTableAllocator(restaurants RestaurantRepository, defaultMinDuration time.Duration) *TableAllocator {
	if defaultMinDuration <= 0 {
		defaultMinDuration = DefaultMinReservationDuration
	}
	return &TableAllocator{restaurants: restaurants, minDuration: defaultMinDuration}
}

// MinDuration returns the restaurant minimum, falling back to the default.
func (a *TableAllocator) MinDuration(settings *domain.RestaurantSettings) time.Duration {
	if settings != nil && settings.MinReservationDuration > 0 {
		return settings.MinReservationDuration
	}
	return a.minDuration
}

func (a *TableAllocator) AssignTable(ctx context.Context, restaurantID, partySize int, start, end time.Time) (*domain.Table, error) {
	if partySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", domain.ErrInvalidInput)
	}

	settings, err := a.restaurants.GetSettings(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if end.Sub(start) < a.MinDuration(settings) {
		return nil, domain.ErrInvalidWindow
	}

	tables, err := a.restaurants.ListCandidateTables(ctx, restaurantID, partySize)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	for i := range tables {
		conflict, err := a.restaurants.HasConflict(ctx, tables[i].ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to check table %d: %w", tables[i].Number, err)
		}
		if !conflict {
			return &tables[i], nil
		}
	}

	return nil, domain.ErrNoTableAvailable
}
