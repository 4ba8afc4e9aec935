package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant-booking/visit-svc/internal/domain"

	"github.com/google/uuid"
)

// PaymentGate collects reservation deposits. The wallet debit and the
// deposit timestamp are written in one transaction, and a debit is never
// retried.
type PaymentGate struct {
	tx         TxManager
	visits     VisitRepository
	wallet     Wallet
	locker     PaymentLocker
	settlement SettlementNotifier
	logger     *slog.Logger
}

func NewPaymentGate(tx TxManager, visits VisitRepository, wallet Wallet, locker PaymentLocker, settlement SettlementNotifier, logger *slog.Logger) *PaymentGate {
	return &PaymentGate{
		tx:         tx,
		visits:     visits,
		wallet:     wallet,
		locker:     locker,
		settlement: settlement,
		logger:     logger,
	}
}

func (g *PaymentGate) PayDeposit(ctx context.Context, visitID, payingUserID int) (*domain.Transaction, error) {
	visit, err := g.visits.GetVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	reservation, err := g.visits.GetReservation(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.ClientID != payingUserID {
		return nil, domain.ErrAccessDenied
	}
	if domain.ResolveStatus(*reservation) != domain.StatusDepositNotPaid {
		return nil, domain.ErrNoDepositToBePaid
	}

	release, err := acquirePaymentLock(ctx, g.locker, visitID, g.logger)
	if err != nil {
		return nil, err
	}
	defer release()

	var txn *domain.Transaction
	err = g.tx.InTx(ctx, func(ctx context.Context) error {
		locked, err := g.visits.GetReservationForUpdate(ctx, visitID)
		if err != nil {
			return err
		}
		if domain.ResolveStatus(*locked) != domain.StatusDepositNotPaid {
			return domain.ErrNoDepositToBePaid
		}

		txn, err = g.wallet.Debit(ctx, payingUserID, *locked.Deposit,
			fmt.Sprintf("Deposit for visit #%d", visitID))
		if err != nil {
			return err
		}
		return g.visits.SetDepositPaid(ctx, visitID, txn.CreatedAt)
	})
	if err != nil {
		return nil, paymentError(g.logger, err, txn != nil, slog.Int("visit_id", visitID), slog.Int("user_id", payingUserID))
	}

	g.logger.Info("deposit paid", slog.Int("visit_id", visitID), slog.Float64("amount", txn.Amount))
	notifySettlement(ctx, g.settlement, g.logger, domain.Settlement{
		Kind:         domain.SettlementDeposit,
		RestaurantID: visit.RestaurantID,
		VisitID:      visitID,
		Amount:       txn.Amount,
	})
	return txn, nil
}

// paymentError turns a commit failure that followed a successful debit into
// ErrPaymentNotRecorded. Every other error is returned unchanged.
func paymentError(logger *slog.Logger, err error, debited bool, attrs ...any) error {
	if debited && errors.Is(err, domain.ErrCommitFailed) {
		logger.Error("wallet debited but state write was not committed",
			append(attrs, slog.String("error", err.Error()))...)
		return fmt.Errorf("%w: %v", domain.ErrPaymentNotRecorded, err)
	}
	return err
}

// acquirePaymentLock guards a visit against concurrent payment submissions.
// Redis being unreachable is not fatal since row locks still serialize the
// writes.
func acquirePaymentLock(ctx context.Context, locker PaymentLocker, visitID int, logger *slog.Logger) (func(), error) {
	if locker == nil {
		return func() {}, nil
	}
	key := locker.PaymentLockKey(visitID)
	token := uuid.NewString()
	acquired, err := locker.Acquire(ctx, key, token)
	if err != nil {
		logger.Warn("payment lock unavailable", slog.Int("visit_id", visitID), slog.String("error", err.Error()))
		return func() {}, nil
	}
	if !acquired {
		return nil, domain.ErrPaymentInProgress
	}
	return func() {
		if err := locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			logger.Warn("failed to release payment lock", slog.Int("visit_id", visitID), slog.String("error", err.Error()))
		}
	}, nil
}

func notifySettlement(ctx context.Context, notifier SettlementNotifier, logger *slog.Logger, settlement domain.Settlement) {
	if notifier == nil || settlement.Amount <= 0 {
		return
	}
	if err := notifier.Notify(ctx, settlement); err != nil {
		logger.Warn("settlement notification failed",
			slog.Int("restaurant_id", settlement.RestaurantID),
			slog.Int("visit_id", settlement.VisitID),
			slog.String("error", err.Error()))
	}
}
