package service

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (domain.Order, error) {
	args := m.Called(ctx, orderNumber)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderRepo) GetByOrderNumberAndStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) (domain.Order, error) {
	args := m.Called(ctx, orderNumber, status)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderRepo) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, order domain.Order) (domain.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *mockOrderRepo) Cancel(ctx context.Context, orderNumber string) error {
	args := m.Called(ctx, orderNumber)
	return args.Error(0)
}

func (m *mockOrderRepo) MostPopularDrink(ctx context.Context) (string, int64, error) {
	args := m.Called(ctx)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) MostPopularTopping(ctx context.Context) (string, int64, error) {
	args := m.Called(ctx)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepo) GetByName(ctx context.Context, name string) (domain.Product, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordingPublisher captures published events instead of mocking calls, so
// tests can decode the body.
type recordingPublisher struct {
	exchange string
	key      string
	events   []domain.OrderEvent
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, exchange, key string, body []byte) error {
	if p.err != nil {
		return p.err
	}
	p.exchange = exchange
	p.key = key
	var event domain.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}
	p.events = append(p.events, event)
	return nil
}
