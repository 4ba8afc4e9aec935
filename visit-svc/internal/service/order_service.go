package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"restaurant-booking/visit-svc/internal/domain"
)

type OrderDeps struct {
	Tx         TxManager
	Visits     VisitRepository
	Orders     OrderRepository
	Menu       MenuCatalog
	Wallet     Wallet
	Employment EmploymentRegistry
	Access     AccessControl
	Settlement SettlementNotifier
	Logger     *slog.Logger
}

type OrderService struct {
	tx         TxManager
	visits     VisitRepository
	orders     OrderRepository
	menu       MenuCatalog
	wallet     Wallet
	employment EmploymentRegistry
	access     AccessControl
	settlement SettlementNotifier
	logger     *slog.Logger
}

func NewOrderService(deps OrderDeps) *OrderService {
	return &OrderService{
		tx:         deps.Tx,
		visits:     deps.Visits,
		orders:     deps.Orders,
		menu:       deps.Menu,
		wallet:     deps.Wallet,
		employment: deps.Employment,
		access:     deps.Access,
		settlement: deps.Settlement,
		logger:     deps.Logger,
	}
}

// CreateOrder validates the requested menu items against the visit's
// restaurant and freezes their current prices. Orders placed before the
// visit starts are paid immediately; table-side orders are paid on close.
// Declined reservations take no orders.
func (s *OrderService) CreateOrder(ctx context.Context, visitID, clientID int, items []domain.OrderItemRequest, note *string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domain.ErrInvalidInput)
	}

	visit, err := s.visits.GetVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		VisitID:      visitID,
		RestaurantID: visit.RestaurantID,
		ClientID:     clientID,
		Note:         note,
		Items:        make([]domain.OrderItem, 0, len(items)),
	}
	for _, requested := range items {
		if requested.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
		}
		menuItem, err := s.menu.GetMenuItem(ctx, requested.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem.RestaurantID != visit.RestaurantID {
			return nil, fmt.Errorf("%w: menu item %d", domain.ErrBelongsToAnotherRestaurant, menuItem.ID)
		}
		if len(menuItem.ActiveMenuIDs) == 0 {
			return nil, fmt.Errorf("%w: menu item %d", domain.ErrNotInAMenu, menuItem.ID)
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   requested.Quantity,
			Price:      menuItem.Price,
			Status:     domain.ItemInProgress,
		})
	}

	participant, err := s.access.IsVisitParticipant(ctx, visitID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check visit participant: %w", err)
	}
	if !participant {
		return nil, domain.ErrAccessDenied
	}

	var txn *domain.Transaction
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		// Payment mode is decided on the locked row.
		locked, err := s.visits.GetVisitForUpdate(ctx, visitID)
		if err != nil {
			return err
		}
		if locked.Ended() {
			return domain.ErrVisitEnded
		}
		reservation, err := s.visits.GetReservation(ctx, visitID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if reservation != nil && domain.ResolveStatus(*reservation) == domain.StatusDeclinedByRestaurant {
			return domain.ErrReservationDeclined
		}

		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return err
		}
		if locked.Started() || order.Total() <= 0 {
			return nil
		}

		txn, err = s.wallet.Debit(ctx, clientID, order.Total(), fmt.Sprintf("Order #%d", order.ID))
		if err != nil {
			return err
		}
		if err := s.orders.MarkPaid(ctx, []int{order.ID}, txn.CreatedAt); err != nil {
			return err
		}
		order.PaidAt = &txn.CreatedAt
		return nil
	})
	if err != nil {
		return nil, paymentError(s.logger, err, txn != nil, slog.Int("visit_id", visitID), slog.Int("user_id", clientID))
	}

	s.logger.Info("order created",
		slog.Int("order_id", order.ID),
		slog.Int("visit_id", visitID),
		slog.Bool("paid", order.PaidAt != nil))
	if txn != nil {
		notifySettlement(ctx, s.settlement, s.logger, domain.Settlement{
			Kind:         domain.SettlementOrder,
			RestaurantID: visit.RestaurantID,
			VisitID:      visitID,
			Amount:       txn.Amount,
		})
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, requesterID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	participant, err := s.access.IsVisitParticipant(ctx, order.VisitID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check visit participant: %w", err)
	}
	if !participant {
		if err := requireStaff(ctx, s.access, order.RestaurantID, requesterID); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// CancelItem withdraws one item the kitchen has not confirmed yet. Sibling
// items are left untouched.
func (s *OrderService) CancelItem(ctx context.Context, orderID, itemID, clientID int) (*domain.Order, error) {
	return s.clientCancel(ctx, orderID, clientID, func(order *domain.Order) (map[int]domain.ItemStatus, error) {
		item, ok := order.Item(itemID)
		if !ok {
			return nil, domain.ErrItemNotInOrder
		}
		if err := domain.CheckClientCancel(*item); err != nil {
			return nil, err
		}
		return map[int]domain.ItemStatus{itemID: domain.ItemCancelled}, nil
	})
}

// CancelOrder withdraws every item at once, or nothing if any item is
// already taken or cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, clientID int) (*domain.Order, error) {
	return s.clientCancel(ctx, orderID, clientID, func(order *domain.Order) (map[int]domain.ItemStatus, error) {
		if !order.CanBeCancelled() {
			return nil, domain.ErrSomeOfItemsAreTaken
		}
		statuses := make(map[int]domain.ItemStatus, len(order.Items))
		for _, item := range order.Items {
			statuses[item.ID] = domain.ItemCancelled
		}
		return statuses, nil
	})
}

func (s *OrderService) clientCancel(ctx context.Context, orderID, clientID int, plan func(*domain.Order) (map[int]domain.ItemStatus, error)) (*domain.Order, error) {
	var order *domain.Order
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order.ClientID != clientID {
			return domain.ErrAccessDenied
		}
		visit, err := s.visits.GetVisit(ctx, order.VisitID)
		if err != nil {
			return err
		}
		if visit.Ended() {
			return domain.ErrVisitEnded
		}

		statuses, err := plan(order)
		if err != nil {
			return err
		}
		if err := s.orders.SetItemStatuses(ctx, orderID, statuses); err != nil {
			return err
		}
		applyStatuses(order, statuses)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order items cancelled", slog.Int("order_id", orderID), slog.Int("client_id", clientID))
	return order, nil
}

// UpdateStatus applies a staff bulk update. Every item is validated before
// anything is written so a rejected item leaves the order unchanged.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, updates []domain.ItemStatusUpdate, employeeID int) (*domain.Order, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no item updates", domain.ErrInvalidInput)
	}
	seen := make(map[int]bool, len(updates))
	for _, update := range updates {
		if seen[update.ItemID] {
			return nil, fmt.Errorf("%w: item %d listed more than once", domain.ErrInvalidInput, update.ItemID)
		}
		seen[update.ItemID] = true
	}

	var order *domain.Order
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := requireStaff(ctx, s.access, order.RestaurantID, employeeID); err != nil {
			return err
		}

		statuses := make(map[int]domain.ItemStatus, len(updates))
		for _, update := range updates {
			item, ok := order.Item(update.ItemID)
			if !ok {
				return fmt.Errorf("%w: item %d", domain.ErrItemNotInOrder, update.ItemID)
			}
			if err := domain.CheckStaffTransition(item.Status, update.Status); err != nil {
				return fmt.Errorf("item %d: %w", update.ItemID, err)
			}
			if item.Status != update.Status {
				statuses[update.ItemID] = update.Status
			}
		}
		if len(statuses) == 0 {
			return nil
		}

		if err := s.orders.SetItemStatuses(ctx, orderID, statuses); err != nil {
			return err
		}
		applyStatuses(order, statuses)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated", slog.Int("order_id", orderID), slog.Int("employee_id", employeeID))
	return order, nil
}

// AssignEmployees adds employees to the order. Assignments are never removed.
func (s *OrderService) AssignEmployees(ctx context.Context, orderID int, employeeIDs []int, requesterID int) (*domain.Order, error) {
	if len(employeeIDs) == 0 {
		return nil, fmt.Errorf("%w: no employees to assign", domain.ErrInvalidInput)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := requireStaff(ctx, s.access, order.RestaurantID, requesterID); err != nil {
		return nil, err
	}

	for _, employeeID := range employeeIDs {
		employed, err := s.employment.IsCurrentlyEmployed(ctx, employeeID, order.RestaurantID)
		if err != nil {
			return nil, fmt.Errorf("failed to check employment: %w", err)
		}
		if !employed {
			return nil, fmt.Errorf("%w: user %d", domain.ErrMustBeRestaurantEmployee, employeeID)
		}
	}

	if err := s.orders.AddEmployees(ctx, orderID, employeeIDs); err != nil {
		return nil, err
	}
	for _, id := range employeeIDs {
		if !slices.Contains(order.EmployeeIDs, id) {
			order.EmployeeIDs = append(order.EmployeeIDs, id)
		}
	}
	return order, nil
}

func applyStatuses(order *domain.Order, statuses map[int]domain.ItemStatus) {
	for i := range order.Items {
		if status, ok := statuses[order.Items[i].ID]; ok {
			order.Items[i].Status = status
		}
	}
}
