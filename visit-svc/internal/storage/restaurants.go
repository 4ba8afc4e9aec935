package storage

import (
	"context"
	"database/sql"
	"time"

	"restaurant-booking/visit-svc/internal/domain"
)

func (r *PostgresRepository) GetSettings(ctx context.Context, restaurantID int) (*domain.RestaurantSettings, error) {
	var settings domain.RestaurantSettings
	var minMinutes sql.NullInt64
	var deposit sql.NullFloat64
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT id, owner_id, reservation_min_minutes, reservation_deposit
		FROM restaurants
		WHERE id = $1`, restaurantID).
		Scan(&settings.ID, &settings.OwnerID, &minMinutes, &deposit)
	if err != nil {
		return nil, notFound(err, "restaurant")
	}

	if minMinutes.Valid {
		settings.MinReservationDuration = time.Duration(minMinutes.Int64) * time.Minute
	}
	settings.ReservationDeposit = nullFloat(deposit)
	return &settings, nil
}

func (r *PostgresRepository) GetTable(ctx context.Context, tableID int) (*domain.Table, error) {
	var table domain.Table
	var deletedAt sql.NullTime
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT id, restaurant_id, number, capacity, deleted_at
		FROM restaurant_tables
		WHERE id = $1`, tableID).
		Scan(&table.ID, &table.RestaurantID, &table.Number, &table.Capacity, &deletedAt)
	if err != nil {
		return nil, notFound(err, "table")
	}
	table.Deleted = deletedAt.Valid
	return &table, nil
}

func (r *PostgresRepository) ListCandidateTables(ctx context.Context, restaurantID, minCapacity int) ([]domain.Table, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, `
		SELECT id, restaurant_id, number, capacity
		FROM restaurant_tables
		WHERE restaurant_id = $1 AND capacity >= $2 AND deleted_at IS NULL
		ORDER BY number`, restaurantID, minCapacity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.Table
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.RestaurantID, &table.Number, &table.Capacity); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}

// HasConflict reports whether a live booking of the table intersects the
// half-open window [start, end).
func (r *PostgresRepository) HasConflict(ctx context.Context, tableID int, start, end time.Time) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM visits
			WHERE table_id = $1 AND NOT slot_released
			  AND slot_start < $3 AND $2 < slot_end
		)`, tableID, start, end).Scan(&exists)
	return exists, err
}
