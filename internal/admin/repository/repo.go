package repository

import (
	"context"
	"errors"

	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("not found")

type OrderRepositoryInterface interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, error)
	GetByOrderNumberAndStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) (domain.Order, error)
	ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	Update(ctx context.Context, order domain.Order) (domain.Order, error)
	Cancel(ctx context.Context, orderNumber string) error
	MostPopularDrink(ctx context.Context) (string, int64, error)
	MostPopularTopping(ctx context.Context) (string, int64, error)
}

type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	GetByName(ctx context.Context, name string) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
