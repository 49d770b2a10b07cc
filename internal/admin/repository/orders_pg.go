package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

const orderColumns = `id, order_number, orderer, status, discounts, sub_total_price_in_cents,
	total_price_in_cents, currency, order_lines, created_at, updated_at, canceled_at`

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	lines, err := json.Marshal(order.OrderLines)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to marshal order lines: %w", err)
	}
	discounts, err := json.Marshal(order.Discounts)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to marshal discounts: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (order_number, orderer, status, discounts, sub_total_price_in_cents,
			total_price_in_cents, currency, order_lines, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING `+orderColumns,
		order.OrderNumber, order.Orderer, order.Status, discounts,
		order.SubTotalPriceInCents, order.TotalPriceInCents, order.Currency, lines)
	return scanOrder(row)
}

func (r *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)
	return scanOrder(row)
}

func (r *OrderRepository) GetByOrderNumberAndStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) (domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1 AND status = $2`,
		orderNumber, status)
	return scanOrder(row)
}

func (r *OrderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY created_at ASC`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Update(ctx context.Context, order domain.Order) (domain.Order, error) {
	lines, err := json.Marshal(order.OrderLines)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to marshal order lines: %w", err)
	}
	discounts, err := json.Marshal(order.Discounts)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to marshal discounts: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		UPDATE orders
		SET orderer = $2,
		    order_lines = $3,
		    discounts = $4,
		    sub_total_price_in_cents = $5,
		    total_price_in_cents = $6,
		    updated_at = NOW()
		WHERE order_number = $1
		RETURNING `+orderColumns,
		order.OrderNumber, order.Orderer, lines, discounts,
		order.SubTotalPriceInCents, order.TotalPriceInCents)
	return scanOrder(row)
}

func (r *OrderRepository) Cancel(ctx context.Context, orderNumber string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, canceled_at = NOW(), updated_at = NOW()
		WHERE order_number = $1`,
		orderNumber, domain.StatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderRepository) MostPopularDrink(ctx context.Context) (string, int64, error) {
	row := r.db.QueryRow(ctx, `
		SELECT line->>'drink' AS name, COUNT(*) AS cnt
		FROM orders, jsonb_array_elements(order_lines) AS line
		WHERE line->>'drink' IS NOT NULL
		GROUP BY 1
		ORDER BY cnt DESC, name ASC
		LIMIT 1`)

	var name string
	var count int64
	if err := row.Scan(&name, &count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, ErrNotFound
		}
		return "", 0, fmt.Errorf("failed to query most popular drink: %w", err)
	}
	return name, count, nil
}

func (r *OrderRepository) MostPopularTopping(ctx context.Context) (string, int64, error) {
	row := r.db.QueryRow(ctx, `
		SELECT topping AS name, COUNT(*) AS cnt
		FROM orders,
		     jsonb_array_elements(order_lines) AS line,
		     jsonb_array_elements_text(line->'toppings') AS topping
		GROUP BY 1
		ORDER BY cnt DESC, name ASC
		LIMIT 1`)

	var name string
	var count int64
	if err := row.Scan(&name, &count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, ErrNotFound
		}
		return "", 0, fmt.Errorf("failed to query most popular topping: %w", err)
	}
	return name, count, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o            domain.Order
		rawLines     []byte
		rawDiscounts []byte
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Orderer, &o.Status, &rawDiscounts,
		&o.SubTotalPriceInCents, &o.TotalPriceInCents, &o.Currency,
		&rawLines, &o.CreatedAt, &o.UpdatedAt, &o.CanceledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, ErrNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to scan order: %w", err)
	}

	if len(rawLines) > 0 {
		if err := json.Unmarshal(rawLines, &o.OrderLines); err != nil {
			return domain.Order{}, fmt.Errorf("failed to unmarshal order lines: %w", err)
		}
	}
	if len(rawDiscounts) > 0 {
		if err := json.Unmarshal(rawDiscounts, &o.Discounts); err != nil {
			return domain.Order{}, fmt.Errorf("failed to unmarshal discounts: %w", err)
		}
	}
	return o, nil
}
