package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepositoryInterface {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_name, type, price_in_cents, COALESCE(favorite, FALSE)
		 FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.PriceInCents, &p.IsFavorite); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT id, product_name, type, price_in_cents, COALESCE(favorite, FALSE)
		 FROM products WHERE id = $1`, id))
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) (domain.Product, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT id, product_name, type, price_in_cents, COALESCE(favorite, FALSE)
		 FROM products WHERE product_name = $1`, name))
}

func (r *ProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (product_name, type, price_in_cents, favorite)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		p.Name, p.Type, p.PriceInCents, p.IsFavorite,
	).Scan(&p.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET product_name = $2, type = $3, price_in_cents = $4, favorite = $5
		WHERE id = $1`,
		p.ID, p.Name, p.Type, p.PriceInCents, p.IsFavorite)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) scanOne(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.PriceInCents, &p.IsFavorite)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}
	return p, nil
}
