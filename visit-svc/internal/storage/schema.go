package storage

import (
	"context"
	"fmt"
)

// Schema creates the tables the visit service owns together with the
// read-side tables of the menu, employment and wallet subsystems.
// visits_no_overlap rejects two live bookings of one table whose [start, end)
// windows intersect; declined reservations release their slot.
var Schema = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		owner_id INT NOT NULL,
		name TEXT NOT NULL,
		reservation_min_minutes INT,
		reservation_deposit NUMERIC(10, 2) CHECK (reservation_deposit > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_tables (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id),
		number INT NOT NULL,
		capacity INT NOT NULL CHECK (capacity > 0),
		deleted_at TIMESTAMPTZ,
		UNIQUE (restaurant_id, number)
	)`,
	`CREATE TABLE IF NOT EXISTS visits (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id),
		client_id INT NOT NULL,
		guests INT NOT NULL DEFAULT 0 CHECK (guests >= 0),
		table_id INT NOT NULL REFERENCES restaurant_tables(id),
		slot_start TIMESTAMPTZ NOT NULL,
		slot_end TIMESTAMPTZ NOT NULL,
		slot_released BOOLEAN NOT NULL DEFAULT FALSE,
		start_time TIMESTAMPTZ,
		end_time TIMESTAMPTZ,
		tip NUMERIC(10, 2),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (slot_end > slot_start),
		CONSTRAINT visits_no_overlap EXCLUDE USING gist (
			table_id WITH =,
			tstzrange(slot_start, slot_end, '[)') WITH &&
		) WHERE (NOT slot_released)
	)`,
	`CREATE TABLE IF NOT EXISTS visit_participants (
		visit_id INT NOT NULL REFERENCES visits(id),
		user_id INT NOT NULL,
		PRIMARY KEY (visit_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		visit_id INT PRIMARY KEY REFERENCES visits(id),
		deposit NUMERIC(10, 2) CHECK (deposit > 0),
		deposit_paid_at TIMESTAMPTZ,
		reserved_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_decisions (
		visit_id INT PRIMARY KEY REFERENCES reservations(visit_id),
		employee_id INT NOT NULL,
		is_accepted BOOLEAN NOT NULL,
		decided_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menus (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id),
		name TEXT NOT NULL,
		date_from DATE NOT NULL DEFAULT CURRENT_DATE,
		date_until DATE
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id),
		name TEXT NOT NULL,
		price NUMERIC(10, 2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS menu_menu_items (
		menu_id INT NOT NULL REFERENCES menus(id),
		menu_item_id INT NOT NULL REFERENCES menu_items(id),
		PRIMARY KEY (menu_id, menu_item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		visit_id INT NOT NULL REFERENCES visits(id),
		client_id INT NOT NULL,
		note TEXT,
		paid_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id),
		menu_item_id INT NOT NULL REFERENCES menu_items(id),
		quantity INT NOT NULL CHECK (quantity > 0),
		price NUMERIC(10, 2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'InProgress'
	)`,
	`CREATE TABLE IF NOT EXISTS order_employees (
		order_id INT NOT NULL REFERENCES orders(id),
		employee_id INT NOT NULL,
		PRIMARY KEY (order_id, employee_id)
	)`,
	`CREATE TABLE IF NOT EXISTS employments (
		id SERIAL PRIMARY KEY,
		employee_id INT NOT NULL,
		restaurant_id INT NOT NULL REFERENCES restaurants(id),
		is_backdoor_employee BOOLEAN NOT NULL DEFAULT FALSE,
		is_hall_employee BOOLEAN NOT NULL DEFAULT FALSE,
		date_from DATE NOT NULL DEFAULT CURRENT_DATE,
		date_until DATE
	)`,
	`CREATE TABLE IF NOT EXISTS wallets (
		user_id INT PRIMARY KEY,
		balance NUMERIC(12, 2) NOT NULL DEFAULT 0 CHECK (balance >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS wallet_transactions (
		id SERIAL PRIMARY KEY,
		reference UUID NOT NULL UNIQUE,
		user_id INT NOT NULL REFERENCES wallets(user_id),
		amount NUMERIC(12, 2) NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range Schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
