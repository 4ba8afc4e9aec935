package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"restaurant-booking/visit-svc/internal/domain"
)

type VisitDeps struct {
	Tx          TxManager
	Restaurants RestaurantRepository
	Visits      VisitRepository
	Orders      OrderRepository
	Allocator   *TableAllocator
	Wallet      Wallet
	Access      AccessControl
	Locker      PaymentLocker
	Settlement  SettlementNotifier
	QR          QRGenerator
	Logger      *slog.Logger
	Now         func() time.Time
}

type VisitService struct {
	tx          TxManager
	restaurants RestaurantRepository
	visits      VisitRepository
	orders      OrderRepository
	allocator   *TableAllocator
	wallet      Wallet
	access      AccessControl
	locker      PaymentLocker
	settlement  SettlementNotifier
	qr          QRGenerator
	logger      *slog.Logger
	now         func() time.Time
}

func NewVisitService(deps VisitDeps) *VisitService {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &VisitService{
		tx:          deps.Tx,
		restaurants: deps.Restaurants,
		visits:      deps.Visits,
		orders:      deps.Orders,
		allocator:   deps.Allocator,
		wallet:      deps.Wallet,
		access:      deps.Access,
		locker:      deps.Locker,
		settlement:  deps.Settlement,
		qr:          deps.QR,
		logger:      deps.Logger,
		now:         deps.Now,
	}
}

func (s *VisitService) CreateReservation(ctx context.Context, req domain.ReservationRequest) (*domain.VisitDetails, error) {
	if err := validateParty(req.ClientID, req.Guests, req.ParticipantIDs); err != nil {
		return nil, err
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: reservation must end after it starts", domain.ErrInvalidInput)
	}
	if req.StartTime.Before(s.now()) {
		return nil, fmt.Errorf("%w: reservation cannot start in the past", domain.ErrInvalidInput)
	}

	settings, err := s.restaurants.GetSettings(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	visit := &domain.Visit{
		RestaurantID:   req.RestaurantID,
		ClientID:       req.ClientID,
		ParticipantIDs: req.ParticipantIDs,
		Guests:         req.Guests,
		SlotStart:      req.StartTime,
		SlotEnd:        req.EndTime,
	}
	var reservation *domain.Reservation

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		table, err := s.allocator.AssignTable(ctx, req.RestaurantID, visit.PartySize(), req.StartTime, req.EndTime)
		if err != nil {
			return err
		}
		visit.TableID = table.ID
		if err := s.visits.CreateVisit(ctx, visit); err != nil {
			return err
		}

		reservation = &domain.Reservation{
			VisitID:    visit.ID,
			TableID:    table.ID,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Deposit:    settings.RequiredDeposit(),
			ReservedAt: s.now(),
		}
		return s.visits.CreateReservation(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		slog.Int("visit_id", visit.ID),
		slog.Int("restaurant_id", visit.RestaurantID),
		slog.Int("table_id", visit.TableID))
	return domain.Details(*visit, reservation), nil
}

// CreateWalkIn seats a party immediately for the restaurant's minimum
// duration. Walk-ins carry no reservation.
func (s *VisitService) CreateWalkIn(ctx context.Context, req domain.WalkInRequest) (*domain.VisitDetails, error) {
	if err := validateParty(req.ClientID, req.Guests, req.ParticipantIDs); err != nil {
		return nil, err
	}

	settings, err := s.restaurants.GetSettings(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	visit := &domain.Visit{
		RestaurantID:   req.RestaurantID,
		ClientID:       req.ClientID,
		ParticipantIDs: req.ParticipantIDs,
		Guests:         req.Guests,
		SlotStart:      now,
		SlotEnd:        now.Add(s.allocator.MinDuration(settings)),
		StartTime:      &now,
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		table, err := s.allocator.AssignTable(ctx, req.RestaurantID, visit.PartySize(), visit.SlotStart, visit.SlotEnd)
		if err != nil {
			return err
		}
		visit.TableID = table.ID
		return s.visits.CreateVisit(ctx, visit)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("walk-in seated", slog.Int("visit_id", visit.ID), slog.Int("table_id", visit.TableID))
	return domain.Details(*visit, nil), nil
}

func (s *VisitService) FindAvailableTable(ctx context.Context, restaurantID, partySize int, from, until time.Time) (*domain.Table, error) {
	return s.allocator.AssignTable(ctx, restaurantID, partySize, from, until)
}

func (s *VisitService) GetVisit(ctx context.Context, visitID, requesterID int) (*domain.VisitDetails, error) {
	visit, err := s.visits.GetVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if err := s.requireParticipantOrStaff(ctx, visit, requesterID); err != nil {
		return nil, err
	}
	return s.details(ctx, visit)
}

func (s *VisitService) VisitQRCode(ctx context.Context, visitID, requesterID int) ([]byte, error) {
	visit, err := s.visits.GetVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if err := s.requireParticipantOrStaff(ctx, visit, requesterID); err != nil {
		return nil, err
	}
	return s.qr.Generate(visit.ID)
}

func (s *VisitService) AddParticipant(ctx context.Context, visitID, requesterID, userID int) (*domain.VisitDetails, error) {
	var visit *domain.Visit
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		visit, err = s.visits.GetVisitForUpdate(ctx, visitID)
		if err != nil {
			return err
		}
		if visit.ClientID != requesterID {
			return domain.ErrAccessDenied
		}
		if visit.Ended() {
			return domain.ErrVisitEnded
		}
		if visit.HasParticipant(userID) {
			return fmt.Errorf("%w: user %d already takes part in the visit", domain.ErrInvalidInput, userID)
		}

		table, err := s.restaurants.GetTable(ctx, visit.TableID)
		if err != nil {
			return err
		}
		if visit.PartySize()+1 > table.Capacity {
			return domain.ErrTableCapacityExceeded
		}

		if err := s.visits.AddParticipant(ctx, visitID, userID); err != nil {
			return err
		}
		visit.ParticipantIDs = append(visit.ParticipantIDs, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.details(ctx, visit)
}

// RecordDecision stores the restaurant's one-time answer. Declining releases
// the table window.
func (s *VisitService) RecordDecision(ctx context.Context, visitID, employeeID int, accept bool) (*domain.VisitDetails, error) {
	var visit *domain.Visit
	var reservation *domain.Reservation
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		visit, err = s.visits.GetVisit(ctx, visitID)
		if err != nil {
			return err
		}
		if err := s.requireStaff(ctx, visit.RestaurantID, employeeID); err != nil {
			return err
		}
		reservation, err = s.visits.GetReservationForUpdate(ctx, visitID)
		if err != nil {
			return err
		}
		if reservation.Decision != nil {
			return domain.ErrDecisionAlreadyRecorded
		}

		decision := domain.RestaurantDecision{EmployeeID: employeeID, IsAccepted: accept, DecidedAt: s.now()}
		if err := s.visits.RecordDecision(ctx, visitID, decision); err != nil {
			return err
		}
		reservation.Decision = &decision
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation decision recorded",
		slog.Int("visit_id", visitID),
		slog.Int("employee_id", employeeID),
		slog.Bool("accepted", accept))
	return domain.Details(*visit, reservation), nil
}

func (s *VisitService) StartVisit(ctx context.Context, visitID, employeeID int) (*domain.VisitDetails, error) {
	var visit *domain.Visit
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		visit, err = s.visits.GetVisitForUpdate(ctx, visitID)
		if err != nil {
			return err
		}
		if err := s.requireStaff(ctx, visit.RestaurantID, employeeID); err != nil {
			return err
		}
		if visit.Started() {
			return domain.ErrVisitAlreadyStarted
		}

		reservation, err := s.visits.GetReservation(ctx, visitID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if reservation != nil && domain.ResolveStatus(*reservation) == domain.StatusDeclinedByRestaurant {
			return domain.ErrReservationDeclined
		}

		now := s.now()
		if err := s.visits.MarkStarted(ctx, visitID, now); err != nil {
			return err
		}
		visit.StartTime = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("visit started", slog.Int("visit_id", visitID))
	return s.details(ctx, visit)
}

// CloseVisit ends the visit and charges the creator for every unpaid order
// plus the tip, in the same transaction that records the end time.
func (s *VisitService) CloseVisit(ctx context.Context, visitID, requesterID int, tip *float64) (*domain.VisitDetails, error) {
	if tip != nil && *tip < 0 {
		return nil, fmt.Errorf("%w: tip cannot be negative", domain.ErrInvalidInput)
	}

	visit, err := s.visits.GetVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.ClientID != requesterID {
		if err := s.requireStaff(ctx, visit.RestaurantID, requesterID); err != nil {
			return nil, err
		}
	}
	if visit.Ended() {
		return nil, domain.ErrVisitEnded
	}

	release, err := acquirePaymentLock(ctx, s.locker, visitID, s.logger)
	if err != nil {
		return nil, err
	}
	defer release()

	var txn *domain.Transaction
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		locked, err := s.visits.GetVisitForUpdate(ctx, visitID)
		if err != nil {
			return err
		}
		if locked.Ended() {
			return domain.ErrVisitEnded
		}

		unpaid, err := s.orders.ListUnpaidOrders(ctx, visitID)
		if err != nil {
			return err
		}
		var total float64
		orderIDs := make([]int, 0, len(unpaid))
		for i := range unpaid {
			total += unpaid[i].Total()
			orderIDs = append(orderIDs, unpaid[i].ID)
		}
		if tip != nil {
			total += *tip
		}

		now := s.now()
		if total > 0 {
			txn, err = s.wallet.Debit(ctx, locked.ClientID, total, fmt.Sprintf("Bill for visit #%d", visitID))
			if err != nil {
				return err
			}
		}
		if len(orderIDs) > 0 {
			if err := s.orders.MarkPaid(ctx, orderIDs, now); err != nil {
				return err
			}
		}
		if err := s.visits.MarkEnded(ctx, visitID, now, tip); err != nil {
			return err
		}
		visit = locked
		visit.EndTime = &now
		visit.Tip = tip
		return nil
	})
	if err != nil {
		return nil, paymentError(s.logger, err, txn != nil, slog.Int("visit_id", visitID))
	}

	s.logger.Info("visit closed", slog.Int("visit_id", visitID))
	if txn != nil {
		notifySettlement(ctx, s.settlement, s.logger, domain.Settlement{
			Kind:         domain.SettlementVisitClose,
			RestaurantID: visit.RestaurantID,
			VisitID:      visitID,
			Amount:       txn.Amount,
		})
	}
	return s.details(ctx, visit)
}

func (s *VisitService) details(ctx context.Context, visit *domain.Visit) (*domain.VisitDetails, error) {
	reservation, err := s.visits.GetReservation(ctx, visit.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Details(*visit, nil), nil
	}
	if err != nil {
		return nil, err
	}
	return domain.Details(*visit, reservation), nil
}

func (s *VisitService) requireStaff(ctx context.Context, restaurantID, userID int) error {
	return requireStaff(ctx, s.access, restaurantID, userID)
}

func (s *VisitService) requireParticipantOrStaff(ctx context.Context, visit *domain.Visit, userID int) error {
	if visit.HasParticipant(userID) {
		return nil
	}
	return s.requireStaff(ctx, visit.RestaurantID, userID)
}

func requireStaff(ctx context.Context, access AccessControl, restaurantID, userID int) error {
	ok, err := access.IsRestaurantOwnerOrBackdoorEmployee(ctx, restaurantID, userID)
	if err != nil {
		return fmt.Errorf("failed to check restaurant staff: %w", err)
	}
	if !ok {
		return domain.ErrAccessDenied
	}
	return nil
}

func validateParty(clientID, guests int, participantIDs []int) error {
	if guests < 0 {
		return fmt.Errorf("%w: guests cannot be negative", domain.ErrInvalidInput)
	}
	seen := make(map[int]struct{}, len(participantIDs))
	for _, id := range participantIDs {
		if id == clientID {
			return fmt.Errorf("%w: the creator is already part of the visit", domain.ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: participant %d listed twice", domain.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
