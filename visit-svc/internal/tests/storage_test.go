package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"restaurant-booking/visit-svc/internal/domain"
	"restaurant-booking/visit-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_InTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits the joined statements", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE visits SET start_time").WithArgs(at(18, 0), 7).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE visits SET end_time").WithArgs(at(20, 0), nil, 7).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.InTx(ctx, func(ctx context.Context) error {
			if err := repo.MarkStarted(ctx, 7, at(18, 0)); err != nil {
				return err
			}
			return repo.InTx(ctx, func(ctx context.Context) error {
				return repo.MarkEnded(ctx, 7, at(20, 0), nil)
			})
		})

		assert.NoError(t, err)
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := repo.InTx(ctx, func(ctx context.Context) error {
			return domain.ErrInsufficientFunds
		})

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("commit failure is reported distinctly", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("connection reset by peer"))

		err := repo.InTx(ctx, func(ctx context.Context) error { return nil })

		assert.ErrorIs(t, err, domain.ErrCommitFailed)
	})
}

func TestPostgresRepository_CreateVisit(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts visit and participants", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		visit := &domain.Visit{
			RestaurantID: 1, ClientID: 100, Guests: 1, ParticipantIDs: []int{101, 102},
			TableID: 11, SlotStart: at(18, 0), SlotEnd: at(19, 0),
		}
		mock.ExpectQuery("INSERT INTO visits").
			WithArgs(1, 100, 1, 11, at(18, 0), at(19, 0), nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, fixedNow))
		mock.ExpectExec("INSERT INTO visit_participants").
			WithArgs(42, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, repo.CreateVisit(ctx, visit))
		assert.Equal(t, 42, visit.ID)
		assert.Equal(t, fixedNow, visit.CreatedAt)
	})

	t.Run("overlapping slot maps to no table", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("INSERT INTO visits").
			WillReturnError(&pq.Error{Code: "23P01", Constraint: "visits_no_overlap"})

		err := repo.CreateVisit(ctx, &domain.Visit{RestaurantID: 1, ClientID: 100, TableID: 11})

		assert.ErrorIs(t, err, domain.ErrNoTableAvailable)
	})
}

func TestPostgresRepository_TableQueries(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("FROM restaurant_tables").
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "number", "capacity"}).
			AddRow(12, 1, 1, 4).
			AddRow(11, 1, 2, 6))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(12, at(18, 15), at(18, 45)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	tables, err := repo.ListCandidateTables(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, 1, tables[0].Number)

	conflict, err := repo.HasConflict(ctx, 12, at(18, 15), at(18, 45))
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestPostgresRepository_GetSettings(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("FROM restaurants").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "reservation_min_minutes", "reservation_deposit"}).
			AddRow(1, 9, 45, nil))

	settings, err := repo.GetSettings(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, settings.MinReservationDuration)
	assert.Nil(t, settings.ReservationDeposit)
}

func TestPostgresRepository_GetReservation(t *testing.T) {
	ctx := context.Background()
	columns := []string{
		"visit_id", "table_id", "slot_start", "slot_end", "deposit", "deposit_paid_at", "reserved_at",
		"employee_id", "is_accepted", "decided_at",
	}

	t.Run("with decision", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("FROM reservations").
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(7, 11, at(18, 0), at(19, 0), 20.0, at(12, 5), at(12, 0), 5, false, at(13, 0)))

		reservation, err := repo.GetReservation(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, reservation.Decision)
		assert.False(t, reservation.Decision.IsAccepted)
		assert.Equal(t, domain.StatusDeclinedByRestaurant, domain.ResolveStatus(*reservation))
	})

	t.Run("missing reservation", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("FROM reservations").WithArgs(8).WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetReservation(ctx, 8)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresRepository_GetVisit(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("FROM visits v").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "restaurant_id", "client_id", "guests", "table_id", "slot_start", "slot_end",
			"start_time", "end_time", "tip", "created_at", "participants",
		}).AddRow(7, 1, 100, 2, 11, at(18, 0), at(19, 0), at(18, 5), nil, nil, fixedNow, "{101,102}"))

	visit, err := repo.GetVisit(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, []int{101, 102}, visit.ParticipantIDs)
	assert.Equal(t, 5, visit.PartySize())
	assert.True(t, visit.Started())
	assert.False(t, visit.Ended())
}

func TestPostgresRepository_Debit(t *testing.T) {
	ctx := context.Background()

	t.Run("records a negative wallet transaction", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("UPDATE wallets").WithArgs(100, 25.0).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO wallet_transactions").
			WithArgs(sqlmock.AnyArg(), 100, -25.0, "Deposit for visit #7").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(900, fixedNow))

		txn, err := repo.Debit(ctx, 100, 25, "Deposit for visit #7")

		require.NoError(t, err)
		assert.Equal(t, 900, txn.ID)
		assert.Equal(t, 25.0, txn.Amount)
		assert.NotEmpty(t, txn.Reference)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("UPDATE wallets").WithArgs(100, 25.0).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Debit(ctx, 100, 25, "Deposit for visit #7")

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		repo, _ := newMockRepository(t)

		_, err := repo.Debit(ctx, 100, 0, "nothing")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestPostgresRepository_SetDepositPaid(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t)
	mock.ExpectExec("UPDATE reservations SET deposit_paid_at").
		WithArgs(fixedNow, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetDepositPaid(ctx, 7, fixedNow)

	assert.ErrorIs(t, err, domain.ErrNoDepositToBePaid)
}

func TestPostgresRepository_RecordDecision(t *testing.T) {
	ctx := context.Background()
	decline := domain.RestaurantDecision{EmployeeID: 5, IsAccepted: false, DecidedAt: fixedNow}

	t.Run("decline releases the slot", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("INSERT INTO restaurant_decisions").
			WithArgs(7, 5, false, fixedNow).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE visits SET slot_released").WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RecordDecision(ctx, 7, decline))
	})

	t.Run("second decision violates uniqueness", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("INSERT INTO restaurant_decisions").WillReturnError(&pq.Error{Code: "23505"})

		err := repo.RecordDecision(ctx, 7, decline)

		assert.ErrorIs(t, err, domain.ErrDecisionAlreadyRecorded)
	})
}

func TestPostgresRepository_SetItemStatuses(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t)
	mock.ExpectExec("UPDATE order_items SET status").
		WithArgs("Taken", 1, 30).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE order_items SET status").
		WithArgs("Cancelled", 2, 30).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetItemStatuses(ctx, 30, map[int]domain.ItemStatus{
		2: domain.ItemCancelled,
		1: domain.ItemTaken,
	})

	assert.ErrorIs(t, err, domain.ErrItemNotInOrder)
}

func TestPostgresRepository_GetOrder(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("FROM orders o").
		WithArgs(30).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "visit_id", "restaurant_id", "client_id", "note", "paid_at", "created_at", "employees",
		}).AddRow(30, 7, 1, 100, "extra napkins", nil, fixedNow, "{20}"))
	mock.ExpectQuery("FROM order_items").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "quantity", "price", "status"}).
			AddRow(1, 30, 50, 2, 6.5, "InProgress").
			AddRow(2, 30, 51, 1, 3.0, "Cancelled"))

	order, err := repo.GetOrder(ctx, 30)

	require.NoError(t, err)
	assert.Equal(t, []int{20}, order.EmployeeIDs)
	assert.Equal(t, "extra napkins", *order.Note)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 13.0, order.Total(), 0.001)
}

func TestPostgresRepository_GetOrderNotFound(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("FROM orders o").WithArgs(31).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOrder(ctx, 31)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	repo, mock := newMockRepository(t)
	for range storage.Schema {
		mock.ExpectExec(".+").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, repo.EnsureSchema(context.Background()))
}
