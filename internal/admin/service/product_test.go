package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/repository"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
	"github.com/ragnar-alan/coffeStoreAPI/internal/money"
	"github.com/ragnar-alan/coffeStoreAPI/pkg/logger"
)

func newProductService(repo *mockProductRepo) ProductServiceInterface {
	return NewProductService(repo, logger.NewNop())
}

func TestCreateProductValidation(t *testing.T) {
	svc := newProductService(new(mockProductRepo))
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, domain.ProductCreateRequest{Type: "Drinks", PriceInCents: 350})
	assert.ErrorIs(t, err, ErrProductNameRequired)

	_, err = svc.CreateProduct(ctx, domain.ProductCreateRequest{Name: "Latte", PriceInCents: 350})
	assert.ErrorIs(t, err, ErrProductTypeRequired)

	_, err = svc.CreateProduct(ctx, domain.ProductCreateRequest{Name: "Latte", Type: "Drinks"})
	assert.ErrorIs(t, err, ErrProductPriceInvalid)
}

func TestCreateProductRejectsDuplicateName(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByName", mock.Anything, "Latte").
		Return(domain.Product{ID: 3, Name: "Latte"}, nil)

	svc := newProductService(repo)
	_, err := svc.CreateProduct(context.Background(), domain.ProductCreateRequest{
		Name: "Latte", Type: "Drinks", PriceInCents: 350,
	})
	assert.ErrorIs(t, err, ErrProductExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProduct(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByName", mock.Anything, "Latte").
		Return(domain.Product{}, repository.ErrNotFound)
	repo.On("Create", mock.Anything, domain.Product{Name: "Latte", Type: "Drinks", PriceInCents: 350}).
		Return(domain.Product{ID: 1, Name: "Latte", Type: "Drinks", PriceInCents: 350}, nil)

	svc := newProductService(repo)
	created, err := svc.CreateProduct(context.Background(), domain.ProductCreateRequest{
		Name: "Latte", Type: "Drinks", PriceInCents: 350,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	repo.AssertExpectations(t)
}

func TestUpdateProductKeepsAbsentFields(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(domain.Product{ID: 5, Name: "Latte", Type: "Drinks", PriceInCents: 350, IsFavorite: true}, nil)

	newPrice := money.Cents(420)
	expected := domain.Product{ID: 5, Name: "Latte", Type: "Drinks", PriceInCents: 420, IsFavorite: true}
	repo.On("Update", mock.Anything, expected).Return(expected, nil)

	svc := newProductService(repo)
	updated, err := svc.UpdateProduct(context.Background(), 5, domain.ProductChangeRequest{
		PriceInCents: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Latte", updated.Name)
	assert.Equal(t, money.Cents(420), updated.PriceInCents)
	assert.True(t, updated.IsFavorite)
	repo.AssertExpectations(t)
}

func TestUpdateProductRejectsBlankedFields(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(domain.Product{ID: 5, Name: "Latte", Type: "Drinks", PriceInCents: 350}, nil)

	empty := ""
	svc := newProductService(repo)
	_, err := svc.UpdateProduct(context.Background(), 5, domain.ProductChangeRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrProductNameRequired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProductNotFound(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, int64(404)).
		Return(domain.Product{}, repository.ErrNotFound)

	svc := newProductService(repo)
	_, err := svc.UpdateProduct(context.Background(), 404, domain.ProductChangeRequest{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("Delete", mock.Anything, int64(404)).Return(repository.ErrNotFound)

	svc := newProductService(repo)
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), 404), ErrProductNotFound)
}
