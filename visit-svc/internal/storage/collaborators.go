package storage

import (
	"context"
	"fmt"

	"restaurant-booking/visit-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Read side of the menu, employment, access and wallet subsystems.

func (r *PostgresRepository) GetMenuItem(ctx context.Context, menuItemID int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var menus []int64
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT mi.id, mi.restaurant_id, mi.name, mi.price,
		       ARRAY(
		           SELECT m.id FROM menu_menu_items mm
		           JOIN menus m ON m.id = mm.menu_id
		           WHERE mm.menu_item_id = mi.id
		             AND (m.date_until IS NULL OR m.date_until >= CURRENT_DATE)
		           ORDER BY m.id)
		FROM menu_items mi
		WHERE mi.id = $1`, menuItemID).
		Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, pq.Array(&menus))
	if err != nil {
		return nil, notFound(err, "menu item")
	}
	item.ActiveMenuIDs = toInts(menus)
	return &item, nil
}

func (r *PostgresRepository) IsCurrentlyEmployed(ctx context.Context, userID, restaurantID int) (bool, error) {
	var employed bool
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM employments
			WHERE employee_id = $1 AND restaurant_id = $2 AND date_until IS NULL
		)`, userID, restaurantID).Scan(&employed)
	return employed, err
}

func (r *PostgresRepository) IsVisitParticipant(ctx context.Context, visitID, userID int) (bool, error) {
	var participant bool
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM visits WHERE id = $1 AND client_id = $2)
		    OR EXISTS(SELECT 1 FROM visit_participants WHERE visit_id = $1 AND user_id = $2)`,
		visitID, userID).Scan(&participant)
	return participant, err
}

func (r *PostgresRepository) IsRestaurantOwnerOrBackdoorEmployee(ctx context.Context, restaurantID, userID int) (bool, error) {
	var allowed bool
	err := r.conn(ctx).QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1 AND owner_id = $2)
		    OR EXISTS(
		        SELECT 1 FROM employments
		        WHERE restaurant_id = $1 AND employee_id = $2
		          AND is_backdoor_employee AND date_until IS NULL
		    )`, restaurantID, userID).Scan(&allowed)
	return allowed, err
}

// Debit withdraws amount from the user's wallet. Called inside a transaction
// it commits or rolls back together with the caller's state change.
func (r *PostgresRepository) Debit(ctx context.Context, userID int, amount float64, description string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive", domain.ErrInvalidInput)
	}

	res, err := r.conn(ctx).ExecContext(ctx, `
		UPDATE wallets SET balance = balance - $2
		WHERE user_id = $1 AND balance >= $2`, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to debit wallet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrInsufficientFunds
	}

	txn := &domain.Transaction{
		Reference:   uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
	}
	err = r.conn(ctx).QueryRowContext(ctx, `
		INSERT INTO wallet_transactions (reference, user_id, amount, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		txn.Reference, userID, -amount, description).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record wallet transaction: %w", err)
	}
	return txn, nil
}
