package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"restaurant-booking/visit-svc/internal/domain"

	"github.com/lib/pq"
)

const selectVisit = `
	SELECT v.id, v.restaurant_id, v.client_id, v.guests, v.table_id, v.slot_start, v.slot_end,
	       v.start_time, v.end_time, v.tip, v.created_at,
	       ARRAY(SELECT p.user_id FROM visit_participants p WHERE p.visit_id = v.id ORDER BY p.user_id)
	FROM visits v
	WHERE v.id = $1`

const selectReservation = `
	SELECT r.visit_id, v.table_id, v.slot_start, v.slot_end, r.deposit, r.deposit_paid_at, r.reserved_at,
	       d.employee_id, d.is_accepted, d.decided_at
	FROM reservations r
	JOIN visits v ON v.id = r.visit_id
	LEFT JOIN restaurant_decisions d ON d.visit_id = r.visit_id
	WHERE r.visit_id = $1`

// CreateVisit binds the visit to its table. A concurrent booking that
// already holds an overlapping slot surfaces as ErrNoTableAvailable.
func (r *PostgresRepository) CreateVisit(ctx context.Context, visit *domain.Visit) error {
	var startTime any
	if visit.StartTime != nil {
		startTime = *visit.StartTime
	}

	err := r.conn(ctx).QueryRowContext(ctx, `
		INSERT INTO visits (restaurant_id, client_id, guests, table_id, slot_start, slot_end, start_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		visit.RestaurantID, visit.ClientID, visit.Guests, visit.TableID, visit.SlotStart, visit.SlotEnd, startTime,
	).Scan(&visit.ID, &visit.CreatedAt)
	if err != nil {
		if pqCode(err) == pqExclusionViolation {
			return domain.ErrNoTableAvailable
		}
		return fmt.Errorf("failed to insert visit: %w", err)
	}

	if len(visit.ParticipantIDs) == 0 {
		return nil
	}
	_, err = r.conn(ctx).ExecContext(ctx, `
		INSERT INTO visit_participants (visit_id, user_id)
		SELECT $1, unnest($2::int[])`, visit.ID, pq.Array(visit.ParticipantIDs))
	if err != nil {
		return fmt.Errorf("failed to insert participants: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CreateReservation(ctx context.Context, reservation *domain.Reservation) error {
	_, err := r.conn(ctx).ExecContext(ctx, `
		INSERT INTO reservations (visit_id, deposit, reserved_at)
		VALUES ($1, $2, $3)`,
		reservation.VisitID, reservation.Deposit, reservation.ReservedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetVisit(ctx context.Context, visitID int) (*domain.Visit, error) {
	return r.scanVisit(r.conn(ctx).QueryRowContext(ctx, selectVisit, visitID))
}

func (r *PostgresRepository) GetVisitForUpdate(ctx context.Context, visitID int) (*domain.Visit, error) {
	return r.scanVisit(r.conn(ctx).QueryRowContext(ctx, selectVisit+" FOR UPDATE OF v", visitID))
}

func (r *PostgresRepository) scanVisit(row *sql.Row) (*domain.Visit, error) {
	var visit domain.Visit
	var startTime, endTime sql.NullTime
	var tip sql.NullFloat64
	var participants []int64

	err := row.Scan(&visit.ID, &visit.RestaurantID, &visit.ClientID, &visit.Guests, &visit.TableID,
		&visit.SlotStart, &visit.SlotEnd, &startTime, &endTime, &tip, &visit.CreatedAt,
		pq.Array(&participants))
	if err != nil {
		return nil, notFound(err, "visit")
	}

	visit.StartTime = nullTime(startTime)
	visit.EndTime = nullTime(endTime)
	visit.Tip = nullFloat(tip)
	visit.ParticipantIDs = toInts(participants)
	return &visit, nil
}

func (r *PostgresRepository) GetReservation(ctx context.Context, visitID int) (*domain.Reservation, error) {
	return r.scanReservation(r.conn(ctx).QueryRowContext(ctx, selectReservation, visitID))
}

func (r *PostgresRepository) GetReservationForUpdate(ctx context.Context, visitID int) (*domain.Reservation, error) {
	return r.scanReservation(r.conn(ctx).QueryRowContext(ctx, selectReservation+" FOR UPDATE OF r", visitID))
}

func (r *PostgresRepository) scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	var deposit sql.NullFloat64
	var paidAt, decidedAt sql.NullTime
	var employeeID sql.NullInt64
	var accepted sql.NullBool

	err := row.Scan(&res.VisitID, &res.TableID, &res.StartTime, &res.EndTime, &deposit, &paidAt, &res.ReservedAt,
		&employeeID, &accepted, &decidedAt)
	if err != nil {
		return nil, notFound(err, "reservation")
	}

	res.Deposit = nullFloat(deposit)
	res.DepositPaidAt = nullTime(paidAt)
	if employeeID.Valid {
		res.Decision = &domain.RestaurantDecision{
			EmployeeID: int(employeeID.Int64),
			IsAccepted: accepted.Bool,
			DecidedAt:  decidedAt.Time,
		}
	}
	return &res, nil
}

func (r *PostgresRepository) SetDepositPaid(ctx context.Context, visitID int, paidAt time.Time) error {
	res, err := r.conn(ctx).ExecContext(ctx, `
		UPDATE reservations SET deposit_paid_at = $1
		WHERE visit_id = $2 AND deposit_paid_at IS NULL`, paidAt, visitID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNoDepositToBePaid
	}
	return nil
}

// RecordDecision writes the decision once. A decline releases the table slot
// so the window no longer blocks allocation.
func (r *PostgresRepository) RecordDecision(ctx context.Context, visitID int, decision domain.RestaurantDecision) error {
	_, err := r.conn(ctx).ExecContext(ctx, `
		INSERT INTO restaurant_decisions (visit_id, employee_id, is_accepted, decided_at)
		VALUES ($1, $2, $3, $4)`,
		visitID, decision.EmployeeID, decision.IsAccepted, decision.DecidedAt)
	if err != nil {
		if pqCode(err) == pqUniqueViolation {
			return domain.ErrDecisionAlreadyRecorded
		}
		return fmt.Errorf("failed to insert decision: %w", err)
	}

	if decision.IsAccepted {
		return nil
	}
	_, err = r.conn(ctx).ExecContext(ctx, `UPDATE visits SET slot_released = TRUE WHERE id = $1`, visitID)
	return err
}

func (r *PostgresRepository) AddParticipant(ctx context.Context, visitID, userID int) error {
	_, err := r.conn(ctx).ExecContext(ctx, `
		INSERT INTO visit_participants (visit_id, user_id) VALUES ($1, $2)`, visitID, userID)
	if err != nil && pqCode(err) == pqUniqueViolation {
		return fmt.Errorf("%w: user %d already takes part in the visit", domain.ErrInvalidInput, userID)
	}
	return err
}

func (r *PostgresRepository) MarkStarted(ctx context.Context, visitID int, at time.Time) error {
	_, err := r.conn(ctx).ExecContext(ctx, `UPDATE visits SET start_time = $1 WHERE id = $2`, at, visitID)
	return err
}

func (r *PostgresRepository) MarkEnded(ctx context.Context, visitID int, at time.Time, tip *float64) error {
	_, err := r.conn(ctx).ExecContext(ctx, `UPDATE visits SET end_time = $1, tip = $2 WHERE id = $3`, at, tip, visitID)
	return err
}
