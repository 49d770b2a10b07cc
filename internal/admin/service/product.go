package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/repository"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
	"github.com/ragnar-alan/coffeStoreAPI/pkg/logger"
)

type ProductServiceInterface interface {
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req domain.ProductCreateRequest) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, req domain.ProductChangeRequest) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductService struct {
	repo repository.ProductRepositoryInterface
	lg   logger.Logger
}

func NewProductService(repo repository.ProductRepositoryInterface, lg logger.Logger) ProductServiceInterface {
	return &ProductService{repo: repo, lg: lg}
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.lg.Warn("product not found", logger.Int64("product_id", id))
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req domain.ProductCreateRequest) (domain.Product, error) {
	if err := validateProductFields(req.Name, req.Type, int64(req.PriceInCents)); err != nil {
		return domain.Product{}, err
	}

	_, err := s.repo.GetByName(ctx, req.Name)
	switch {
	case err == nil:
		s.lg.Warn("product name already taken", logger.String("product_name", req.Name))
		return domain.Product{}, fmt.Errorf("%w: %s", ErrProductExists, req.Name)
	case !errors.Is(err, repository.ErrNotFound):
		return domain.Product{}, fmt.Errorf("failed to check product name: %w", err)
	}

	product := domain.Product{
		Name:         req.Name,
		Type:         req.Type,
		PriceInCents: req.PriceInCents,
	}
	if req.IsFavorite != nil {
		product.IsFavorite = *req.IsFavorite
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// UpdateProduct applies a partial change: absent fields keep their stored
// values.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req domain.ProductChangeRequest) (domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.lg.Warn("product not found for update", logger.Int64("product_id", id))
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to load product for update: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.PriceInCents != nil {
		product.PriceInCents = *req.PriceInCents
	}
	if req.IsFavorite != nil {
		product.IsFavorite = *req.IsFavorite
	}

	if err := validateProductFields(product.Name, product.Type, int64(product.PriceInCents)); err != nil {
		return domain.Product{}, err
	}

	saved, err := s.repo.Update(ctx, product)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to save product: %w", err)
	}
	return saved, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.lg.Warn("product not found for delete", logger.Int64("product_id", id))
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func validateProductFields(name, typ string, priceInCents int64) error {
	if name == "" {
		return ErrProductNameRequired
	}
	if typ == "" {
		return ErrProductTypeRequired
	}
	if priceInCents < 1 {
		return ErrProductPriceInvalid
	}
	return nil
}
