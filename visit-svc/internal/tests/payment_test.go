package tests

import (
	"context"
	"errors"
	"testing"

	"restaurant-booking/logging"
	"restaurant-booking/visit-svc/internal/domain"
	"restaurant-booking/visit-svc/internal/mocks"
	"restaurant-booking/visit-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentMocks struct {
	visits     *mocks.VisitRepository
	wallet     *mocks.Wallet
	locker     *mocks.PaymentLocker
	settlement *mocks.SettlementNotifier
}

func newPaymentMocks(t *testing.T) paymentMocks {
	return paymentMocks{
		visits:     mocks.NewVisitRepository(t),
		wallet:     mocks.NewWallet(t),
		locker:     mocks.NewPaymentLocker(t),
		settlement: mocks.NewSettlementNotifier(t),
	}
}

func (m paymentMocks) gate(tx service.TxManager) *service.PaymentGate {
	return service.NewPaymentGate(tx, m.visits, m.wallet, m.locker, m.settlement, logging.Discard())
}

func (m paymentMocks) expectLock(key string) {
	m.locker.On("PaymentLockKey", 7).Return(key).Once()
	var token string
	m.locker.On("Acquire", mock.Anything, key, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { token = args.String(2) }).
		Return(true, nil).Once()
	m.locker.On("Release", mock.Anything, key, mock.MatchedBy(func(released string) bool {
		return released != "" && released == token
	})).Return(nil).Once()
}

func TestPaymentGate_PayDeposit(t *testing.T) {
	ctx := context.Background()
	visit := &domain.Visit{ID: 7, RestaurantID: 3, ClientID: 100}
	unpaid := func() *domain.Reservation {
		return &domain.Reservation{VisitID: 7, Deposit: ptr(25.0)}
	}
	debit := &domain.Transaction{ID: 900, UserID: 100, Amount: 25, CreatedAt: at(12, 0)}

	tests := []struct {
		name         string
		payingUser   int
		tx           passthroughTx
		prepareMocks func(m paymentMocks)
		wantTxn      *domain.Transaction
		wantErr      error
	}{
		{
			name:       "deposit paid",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(unpaid(), nil).Once()
				m.expectLock("payment:visit:7")
				m.visits.On("GetReservationForUpdate", ctx, 7).Return(unpaid(), nil).Once()
				m.wallet.On("Debit", ctx, 100, 25.0, "Deposit for visit #7").Return(debit, nil).Once()
				m.visits.On("SetDepositPaid", ctx, 7, at(12, 0)).Return(nil).Once()
				m.settlement.On("Notify", ctx, domain.Settlement{
					Kind:         domain.SettlementDeposit,
					RestaurantID: 3,
					VisitID:      7,
					Amount:       25,
				}).Return(nil).Once()
			},
			wantTxn: debit,
		},
		{
			name:       "settlement failure does not fail the payment",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(unpaid(), nil).Once()
				m.expectLock("payment:visit:7")
				m.visits.On("GetReservationForUpdate", ctx, 7).Return(unpaid(), nil).Once()
				m.wallet.On("Debit", ctx, 100, 25.0, "Deposit for visit #7").Return(debit, nil).Once()
				m.visits.On("SetDepositPaid", ctx, 7, at(12, 0)).Return(nil).Once()
				m.settlement.On("Notify", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantTxn: debit,
		},
		{
			name:       "unknown visit",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:       "walk-in has no reservation",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:       "participant cannot pay the deposit",
			payingUser: 101,
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(unpaid(), nil).Once()
			},
			wantErr: domain.ErrAccessDenied,
		},
		{
			name:       "restaurant without deposit",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(&domain.Reservation{VisitID: 7}, nil).Once()
			},
			wantErr: domain.ErrNoDepositToBePaid,
		},
		{
			name:       "deposit already paid",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				paid := unpaid()
				paid.DepositPaidAt = ptr(at(9, 0))
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(paid, nil).Once()
			},
			wantErr: domain.ErrNoDepositToBePaid,
		},
		{
			name:       "another payment holds the lock",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(unpaid(), nil).Once()
				m.locker.On("PaymentLockKey", 7).Return("payment:visit:7").Once()
				m.locker.On("Acquire", ctx, "payment:visit:7", mock.AnythingOfType("string")).Return(false, nil).Once()
			},
			wantErr: domain.ErrPaymentInProgress,
		},
		{
			name:       "deposit paid concurrently before the row lock",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				paid := unpaid()
				paid.DepositPaidAt = ptr(at(11, 59))
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(unpaid(), nil).Once()
				m.expectLock("payment:visit:7")
				m.visits.On("GetReservationForUpdate", ctx, 7).Return(paid, nil).Once()
			},
			wantErr: domain.ErrNoDepositToBePaid,
		},
		{
			name:       "insufficient funds",
			payingUser: 100,
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(unpaid(), nil).Once()
				m.expectLock("payment:visit:7")
				m.visits.On("GetReservationForUpdate", ctx, 7).Return(unpaid(), nil).Once()
				m.wallet.On("Debit", ctx, 100, 25.0, "Deposit for visit #7").Return(nil, domain.ErrInsufficientFunds).Once()
			},
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name:       "commit failure after debit",
			payingUser: 100,
			tx:         passthroughTx{commitErr: errors.New("connection lost")},
			prepareMocks: func(m paymentMocks) {
				m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Once()
				m.visits.On("GetReservation", ctx, 7).Return(unpaid(), nil).Once()
				m.expectLock("payment:visit:7")
				m.visits.On("GetReservationForUpdate", ctx, 7).Return(unpaid(), nil).Once()
				m.wallet.On("Debit", ctx, 100, 25.0, "Deposit for visit #7").Return(debit, nil).Once()
				m.visits.On("SetDepositPaid", ctx, 7, at(12, 0)).Return(nil).Once()
			},
			wantErr: domain.ErrPaymentNotRecorded,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			m := newPaymentMocks(t)
			testCase.prepareMocks(m)

			txn, err := m.gate(testCase.tx).PayDeposit(ctx, 7, testCase.payingUser)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, txn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantTxn, txn)
		})
	}
}

func TestPaymentGate_LockUnavailableStillPays(t *testing.T) {
	ctx := context.Background()
	m := newPaymentMocks(t)
	reservation := &domain.Reservation{VisitID: 7, Deposit: ptr(10.0)}
	debit := &domain.Transaction{ID: 1, UserID: 100, Amount: 10, CreatedAt: at(12, 0)}

	m.visits.On("GetVisit", ctx, 7).Return(&domain.Visit{ID: 7, RestaurantID: 3, ClientID: 100}, nil).Once()
	m.visits.On("GetReservation", ctx, 7).Return(reservation, nil).Once()
	m.locker.On("PaymentLockKey", 7).Return("payment:visit:7").Once()
	m.locker.On("Acquire", ctx, "payment:visit:7", mock.AnythingOfType("string")).Return(false, errors.New("dial tcp: refused")).Once()
	m.visits.On("GetReservationForUpdate", ctx, 7).Return(reservation, nil).Once()
	m.wallet.On("Debit", ctx, 100, 10.0, "Deposit for visit #7").Return(debit, nil).Once()
	m.visits.On("SetDepositPaid", ctx, 7, at(12, 0)).Return(nil).Once()
	m.settlement.On("Notify", ctx, mock.Anything).Return(nil).Once()

	txn, err := m.gate(passthroughTx{}).PayDeposit(ctx, 7, 100)

	require.NoError(t, err)
	assert.Equal(t, 10.0, txn.Amount)
}

func TestPaymentGate_SecondPaymentIsRejected(t *testing.T) {
	ctx := context.Background()
	m := newPaymentMocks(t)
	visit := &domain.Visit{ID: 7, RestaurantID: 3, ClientID: 100}
	debit := &domain.Transaction{ID: 1, UserID: 100, Amount: 25, CreatedAt: at(12, 0)}
	paid := &domain.Reservation{VisitID: 7, Deposit: ptr(25.0), DepositPaidAt: ptr(at(12, 0))}

	m.visits.On("GetVisit", ctx, 7).Return(visit, nil).Twice()
	m.visits.On("GetReservation", ctx, 7).Return(&domain.Reservation{VisitID: 7, Deposit: ptr(25.0)}, nil).Once()
	m.visits.On("GetReservation", ctx, 7).Return(paid, nil).Once()
	m.expectLock("payment:visit:7")
	m.visits.On("GetReservationForUpdate", ctx, 7).Return(&domain.Reservation{VisitID: 7, Deposit: ptr(25.0)}, nil).Once()
	m.wallet.On("Debit", ctx, 100, 25.0, "Deposit for visit #7").Return(debit, nil).Once()
	m.visits.On("SetDepositPaid", ctx, 7, at(12, 0)).Return(nil).Once()
	m.settlement.On("Notify", ctx, mock.Anything).Return(nil).Once()

	gate := m.gate(passthroughTx{})

	_, err := gate.PayDeposit(ctx, 7, 100)
	require.NoError(t, err)

	_, err = gate.PayDeposit(ctx, 7, 100)
	assert.ErrorIs(t, err, domain.ErrNoDepositToBePaid)
	m.wallet.AssertNumberOfCalls(t, "Debit", 1)
}
