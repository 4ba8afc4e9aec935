package service

import (
	"context"
	"time"

	"restaurant-booking/visit-svc/internal/domain"
	"restaurant-booking/visit-svc/internal/storage"
)

type VisitServiceInterface interface {
	CreateReservation(ctx context.Context, req domain.ReservationRequest) (*domain.VisitDetails, error)
	CreateWalkIn(ctx context.Context, req domain.WalkInRequest) (*domain.VisitDetails, error)
	FindAvailableTable(ctx context.Context, restaurantID, partySize int, from, until time.Time) (*domain.Table, error)
	GetVisit(ctx context.Context, visitID, requesterID int) (*domain.VisitDetails, error)
	VisitQRCode(ctx context.Context, visitID, requesterID int) ([]byte, error)
	AddParticipant(ctx context.Context, visitID, requesterID, userID int) (*domain.VisitDetails, error)
	RecordDecision(ctx context.Context, visitID, employeeID int, accept bool) (*domain.VisitDetails, error)
	StartVisit(ctx context.Context, visitID, employeeID int) (*domain.VisitDetails, error)
	CloseVisit(ctx context.Context, visitID, requesterID int, tip *float64) (*domain.VisitDetails, error)
}

type PaymentGateInterface interface {
	PayDeposit(ctx context.Context, visitID, payingUserID int) (*domain.Transaction, error)
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, visitID, clientID int, items []domain.OrderItemRequest, note *string) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID, requesterID int) (*domain.Order, error)
	CancelItem(ctx context.Context, orderID, itemID, clientID int) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, clientID int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, updates []domain.ItemStatusUpdate, employeeID int) (*domain.Order, error)
	AssignEmployees(ctx context.Context, orderID int, employeeIDs []int, requesterID int) (*domain.Order, error)
}

// TxManager runs fn in a single database transaction carried by ctx.
// Commit failures are reported as domain.ErrCommitFailed.
type TxManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type RestaurantRepository interface {
	GetSettings(ctx context.Context, restaurantID int) (*domain.RestaurantSettings, error)
	GetTable(ctx context.Context, tableID int) (*domain.Table, error)
	ListCandidateTables(ctx context.Context, restaurantID, minCapacity int) ([]domain.Table, error)
	HasConflict(ctx context.Context, tableID int, start, end time.Time) (bool, error)
}

type VisitRepository interface {
	CreateVisit(ctx context.Context, visit *domain.Visit) error
	CreateReservation(ctx context.Context, reservation *domain.Reservation) error
	GetVisit(ctx context.Context, visitID int) (*domain.Visit, error)
	GetVisitForUpdate(ctx context.Context, visitID int) (*domain.Visit, error)
	GetReservation(ctx context.Context, visitID int) (*domain.Reservation, error)
	GetReservationForUpdate(ctx context.Context, visitID int) (*domain.Reservation, error)
	SetDepositPaid(ctx context.Context, visitID int, paidAt time.Time) error
	RecordDecision(ctx context.Context, visitID int, decision domain.RestaurantDecision) error
	AddParticipant(ctx context.Context, visitID, userID int) error
	MarkStarted(ctx context.Context, visitID int, at time.Time) error
	MarkEnded(ctx context.Context, visitID int, at time.Time, tip *float64) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	GetOrderForUpdate(ctx context.Context, orderID int) (*domain.Order, error)
	ListUnpaidOrders(ctx context.Context, visitID int) ([]domain.Order, error)
	SetItemStatuses(ctx context.Context, orderID int, statuses map[int]domain.ItemStatus) error
	AddEmployees(ctx context.Context, orderID int, employeeIDs []int) error
	MarkPaid(ctx context.Context, orderIDs []int, paidAt time.Time) error
}

type MenuCatalog interface {
	GetMenuItem(ctx context.Context, menuItemID int) (*domain.MenuItem, error)
}

type Wallet interface {
	Debit(ctx context.Context, userID int, amount float64, description string) (*domain.Transaction, error)
}

type SettlementNotifier interface {
	Notify(ctx context.Context, settlement domain.Settlement) error
}

type EmploymentRegistry interface {
	IsCurrentlyEmployed(ctx context.Context, userID, restaurantID int) (bool, error)
}

type AccessControl interface {
	IsVisitParticipant(ctx context.Context, visitID, userID int) (bool, error)
	IsRestaurantOwnerOrBackdoorEmployee(ctx context.Context, restaurantID, userID int) (bool, error)
}

// PaymentLocker is a lease on a key owned by the token that took it. Release
// must not remove a lease taken by another token.
type PaymentLocker interface {
	PaymentLockKey(visitID int) string
	Acquire(ctx context.Context, key, token string) (bool, error)
	Release(ctx context.Context, key, token string) error
}

var (
	_ VisitServiceInterface = (*VisitService)(nil)
	_ PaymentGateInterface  = (*PaymentGate)(nil)
	_ OrderServiceInterface = (*OrderService)(nil)

	_ TxManager            = (*storage.PostgresRepository)(nil)
	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ VisitRepository      = (*storage.PostgresRepository)(nil)
	_ OrderRepository      = (*storage.PostgresRepository)(nil)
	_ MenuCatalog          = (*storage.PostgresRepository)(nil)
	_ Wallet               = (*storage.PostgresRepository)(nil)
	_ EmploymentRegistry   = (*storage.PostgresRepository)(nil)
	_ AccessControl        = (*storage.PostgresRepository)(nil)
	_ PaymentLocker        = (*storage.RedisPaymentLock)(nil)
	_ SettlementNotifier   = (*storage.KafkaSettlementPublisher)(nil)
)
