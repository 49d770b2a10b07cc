package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/repository"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
	"github.com/ragnar-alan/coffeStoreAPI/internal/money"
	"github.com/ragnar-alan/coffeStoreAPI/pkg/logger"
)

func newOrderService(repo *mockOrderRepo, publisher EventPublisherInterface) OrderServiceInterface {
	return NewOrderService(repo, NewOrderProcessor(allDiscounts()), publisher, logger.NewNop())
}

func TestCreateOrderPersistsAndPublishes(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
		return o.Status == domain.StatusPending &&
			o.OrderNumber != "" &&
			o.SubTotalPriceInCents == 500 &&
			o.TotalPriceInCents == 500
	})).Return(domain.Order{OrderNumber: "RCS-1", Status: domain.StatusPending, TotalPriceInCents: 500}, nil)

	publisher := &recordingPublisher{}
	svc := newOrderService(repo, publisher)

	created, err := svc.CreateOrder(context.Background(), domain.OrderCreateRequest{
		Orderer: "Alice",
		OrderLines: []domain.OrderLineCreate{
			{Drink: "LATTE", Toppings: []string{"MILK"}, PriceInCents: 300},
			{Drink: "TEA", PriceInCents: 200},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "RCS-1", created.OrderNumber)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.EventOrderCreated, publisher.events[0].Action)
	repo.AssertExpectations(t)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newOrderService(new(mockOrderRepo), nil)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, domain.OrderCreateRequest{Orderer: "Alice"})
	assert.ErrorIs(t, err, ErrNoOrderLines)

	_, err = svc.CreateOrder(ctx, domain.OrderCreateRequest{
		Orderer:    "Alice",
		OrderLines: []domain.OrderLineCreate{{PriceInCents: 200}},
	})
	assert.ErrorIs(t, err, ErrDrinkRequired)
}

func TestListOrdersOnlyAsksForPending(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("ListByStatus", mock.Anything, domain.StatusPending).
		Return([]domain.Order{{OrderNumber: "RCS-1"}}, nil)

	svc := newOrderService(repo, nil)
	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	repo.AssertExpectations(t)
}

func TestGetOrderNotFound(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("GetByOrderNumber", mock.Anything, "RCS-404").
		Return(domain.Order{}, repository.ErrNotFound)

	svc := newOrderService(repo, nil)
	_, err := svc.GetOrder(context.Background(), "RCS-404")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrderValidation(t *testing.T) {
	svc := newOrderService(new(mockOrderRepo), nil)
	ctx := context.Background()

	_, err := svc.UpdateOrder(ctx, "RCS-1", domain.AdminOrderChangeRequest{
		OrderLines: []domain.OrderLineChange{{Drink: "LATTE", PriceInCents: 100}},
	})
	assert.ErrorIs(t, err, ErrOrdererRequired)

	_, err = svc.UpdateOrder(ctx, "RCS-1", domain.AdminOrderChangeRequest{Orderer: "Alice"})
	assert.ErrorIs(t, err, ErrNoOrderLines)
}

func TestUpdateOrderRecalculatesAndPublishes(t *testing.T) {
	stored := domain.Order{
		ID:          7,
		OrderNumber: "RCS-1",
		Orderer:     "Alice",
		Status:      domain.StatusPending,
		Currency:    domain.CurrencyEUR,
	}

	repo := new(mockOrderRepo)
	repo.On("GetByOrderNumberAndStatus", mock.Anything, "RCS-1", domain.StatusPending).
		Return(stored, nil)
	saved := stored
	saved.Orderer = "Alice B."
	saved.SubTotalPriceInCents = 1300
	saved.TotalPriceInCents = 975
	repo.On("Update", mock.Anything, mock.MatchedBy(func(o domain.Order) bool {
		return o.SubTotalPriceInCents == 1300 && o.TotalPriceInCents == 975
	})).Return(saved, nil)

	publisher := &recordingPublisher{}
	svc := newOrderService(repo, publisher)

	got, err := svc.UpdateOrder(context.Background(), "RCS-1", domain.AdminOrderChangeRequest{
		Orderer: "Alice B.",
		OrderLines: []domain.OrderLineChange{
			{Drink: "LATTE", PriceInCents: 700},
			{Drink: "COFFEE", PriceInCents: 600},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", got.Orderer)
	assert.Equal(t, money.Cents(975), got.TotalPriceInCents)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.EventOrderUpdated, publisher.events[0].Action)
	assert.Equal(t, "RCS-1", publisher.events[0].OrderNumber)
	repo.AssertExpectations(t)
}

func TestUpdateOrderOnlyTouchesPendingOrders(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("GetByOrderNumberAndStatus", mock.Anything, "RCS-9", domain.StatusPending).
		Return(domain.Order{}, repository.ErrNotFound)

	svc := newOrderService(repo, nil)
	_, err := svc.UpdateOrder(context.Background(), "RCS-9", domain.AdminOrderChangeRequest{
		Orderer:    "Alice",
		OrderLines: []domain.OrderLineChange{{Drink: "TEA", PriceInCents: 200}},
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteOrderSoftCancelsAndPublishes(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("GetByOrderNumber", mock.Anything, "RCS-1").
		Return(domain.Order{OrderNumber: "RCS-1", Status: domain.StatusPending}, nil)
	repo.On("Cancel", mock.Anything, "RCS-1").Return(nil)

	publisher := &recordingPublisher{}
	svc := newOrderService(repo, publisher)

	require.NoError(t, svc.DeleteOrder(context.Background(), "RCS-1"))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.EventOrderCancelled, publisher.events[0].Action)
	assert.Equal(t, domain.StatusCancelled, publisher.events[0].Status)
	repo.AssertExpectations(t)
}

func TestDeleteOrderPublishFailureDoesNotFailDelete(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("GetByOrderNumber", mock.Anything, "RCS-1").
		Return(domain.Order{OrderNumber: "RCS-1", Status: domain.StatusPending}, nil)
	repo.On("Cancel", mock.Anything, "RCS-1").Return(nil)

	publisher := &recordingPublisher{err: errors.New("broker down")}
	svc := newOrderService(repo, publisher)

	assert.NoError(t, svc.DeleteOrder(context.Background(), "RCS-1"))
}

func TestMostPopularItemsPartialPresence(t *testing.T) {
	repo := new(mockOrderRepo)
	repo.On("MostPopularDrink", mock.Anything).Return("LATTE", int64(12), nil)
	repo.On("MostPopularTopping", mock.Anything).Return("", int64(0), repository.ErrNotFound)

	svc := newOrderService(repo, nil)
	popular, err := svc.MostPopularItems(context.Background())
	require.NoError(t, err)

	require.NotNil(t, popular.MostPopularDrink)
	assert.Equal(t, "LATTE", *popular.MostPopularDrink)
	assert.Equal(t, int64(12), popular.DrinkCount)
	assert.Nil(t, popular.MostPopularTopping)
}
