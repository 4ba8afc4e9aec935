package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"restaurant-booking/visit-svc/internal/domain"

	"github.com/lib/pq"
)

const selectOrder = `
	SELECT o.id, o.visit_id, v.restaurant_id, o.client_id, o.note, o.paid_at, o.created_at,
	       ARRAY(SELECT e.employee_id FROM order_employees e WHERE e.order_id = o.id ORDER BY e.employee_id)
	FROM orders o
	JOIN visits v ON v.id = o.visit_id`

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	err := r.conn(ctx).QueryRowContext(ctx, `
		INSERT INTO orders (visit_id, client_id, note)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		order.VisitID, order.ClientID, order.Note,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := r.conn(ctx).QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, price, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.ID, item.MenuItemID, item.Quantity, item.Price, string(item.Status),
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	return r.loadOrder(ctx, selectOrder+" WHERE o.id = $1", orderID)
}

func (r *PostgresRepository) GetOrderForUpdate(ctx context.Context, orderID int) (*domain.Order, error) {
	return r.loadOrder(ctx, selectOrder+" WHERE o.id = $1 FOR UPDATE OF o", orderID)
}

func (r *PostgresRepository) loadOrder(ctx context.Context, query string, orderID int) (*domain.Order, error) {
	order, err := scanOrder(r.conn(ctx).QueryRowContext(ctx, query, orderID))
	if err != nil {
		return nil, notFound(err, "order")
	}

	items, err := r.listItems(ctx, []int{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return order, nil
}

func (r *PostgresRepository) ListUnpaidOrders(ctx context.Context, visitID int) ([]domain.Order, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, selectOrder+`
		WHERE o.visit_id = $1 AND o.paid_at IS NULL
		ORDER BY o.id
		FOR UPDATE OF o`, visitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []int
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	items, err := r.listItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var note sql.NullString
	var paidAt sql.NullTime
	var employees []int64

	err := row.Scan(&order.ID, &order.VisitID, &order.RestaurantID, &order.ClientID, &note, &paidAt,
		&order.CreatedAt, pq.Array(&employees))
	if err != nil {
		return nil, err
	}
	if note.Valid {
		order.Note = &note.String
	}
	order.PaidAt = nullTime(paidAt)
	order.EmployeeIDs = toInts(employees)
	return &order, nil
}

func (r *PostgresRepository) listItems(ctx context.Context, orderIDs []int) (map[int][]domain.OrderItem, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, quantity, price, status
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var item domain.OrderItem
		var status string
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.Price, &status); err != nil {
			return nil, err
		}
		item.Status = domain.ItemStatus(status)
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

// SetItemStatuses writes the statuses in ascending item order.
func (r *PostgresRepository) SetItemStatuses(ctx context.Context, orderID int, statuses map[int]domain.ItemStatus) error {
	ids := make([]int, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		res, err := r.conn(ctx).ExecContext(ctx, `
			UPDATE order_items SET status = $1
			WHERE id = $2 AND order_id = $3`, string(statuses[id]), id, orderID)
		if err != nil {
			return fmt.Errorf("failed to update item %d: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: item %d", domain.ErrItemNotInOrder, id)
		}
	}
	return nil
}

func (r *PostgresRepository) AddEmployees(ctx context.Context, orderID int, employeeIDs []int) error {
	_, err := r.conn(ctx).ExecContext(ctx, `
		INSERT INTO order_employees (order_id, employee_id)
		SELECT $1, unnest($2::int[])
		ON CONFLICT DO NOTHING`, orderID, pq.Array(employeeIDs))
	return err
}

func (r *PostgresRepository) MarkPaid(ctx context.Context, orderIDs []int, paidAt time.Time) error {
	_, err := r.conn(ctx).ExecContext(ctx, `
		UPDATE orders SET paid_at = $1
		WHERE id = ANY($2) AND paid_at IS NULL`, paidAt, pq.Array(orderIDs))
	return err
}
