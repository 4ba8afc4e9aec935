package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"restaurant-booking/settlement-svc/internal/domain"
)

var Schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurant_settlements (
		id BIGSERIAL PRIMARY KEY,
		message_id UUID NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		restaurant_id INT NOT NULL,
		visit_id INT NOT NULL,
		amount NUMERIC(12, 2) NOT NULL CHECK (amount > 0),
		settled_at TIMESTAMPTZ NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS restaurant_settlements_restaurant_idx
		ON restaurant_settlements (restaurant_id, settled_at)`,
}

// Ledger is the durable record of restaurant settlements.
type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

func (l *Ledger) EnsureSchema(ctx context.Context) error {
	for _, stmt := range Schema {
		if _, err := l.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (l *Ledger) Record(ctx context.Context, msg domain.SettlementMessage) (bool, error) {
	res, err := l.db.ExecContext(ctx, `
		INSERT INTO restaurant_settlements (message_id, kind, restaurant_id, visit_id, amount, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (message_id) DO NOTHING`,
		msg.ID, string(msg.Type), msg.RestaurantID, msg.VisitID, msg.Amount, msg.Timestamp)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (l *Ledger) Revenue(ctx context.Context, restaurantID int, since *time.Time) (float64, error) {
	var total float64
	err := l.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM restaurant_settlements
		WHERE restaurant_id = $1 AND ($2::timestamptz IS NULL OR settled_at >= $2)`,
		restaurantID, since).Scan(&total)
	return total, err
}

func (l *Ledger) Top(ctx context.Context, since *time.Time, limit int) ([]domain.RankedRestaurant, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT restaurant_id, SUM(amount) AS total
		FROM restaurant_settlements
		WHERE $1::timestamptz IS NULL OR settled_at >= $1
		GROUP BY restaurant_id
		ORDER BY total DESC, restaurant_id
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.RankedRestaurant
	for rows.Next() {
		var r domain.RankedRestaurant
		if err := rows.Scan(&r.RestaurantID, &r.Total); err != nil {
			return nil, err
		}
		top = append(top, r)
	}
	return top, rows.Err()
}
