package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/repository"
	"github.com/ragnar-alan/coffeStoreAPI/internal/connections/rabbitmq"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
	"github.com/ragnar-alan/coffeStoreAPI/pkg/logger"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req domain.OrderCreateRequest) (domain.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, orderNumber string, req domain.AdminOrderChangeRequest) (domain.Order, error)
	DeleteOrder(ctx context.Context, orderNumber string) error
	MostPopularItems(ctx context.Context) (domain.PopularItems, error)
}

type OrderService struct {
	repo      repository.OrderRepositoryInterface
	processor *OrderProcessor
	publisher EventPublisherInterface
	lg        logger.Logger
}

func NewOrderService(
	repo repository.OrderRepositoryInterface,
	processor *OrderProcessor,
	publisher EventPublisherInterface,
	lg logger.Logger,
) OrderServiceInterface {
	return &OrderService{repo: repo, processor: processor, publisher: publisher, lg: lg}
}

// CreateOrder processes a customer order, persists it as PENDING and
// publishes an `order.created` event.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.OrderCreateRequest) (domain.Order, error) {
	if len(req.OrderLines) == 0 {
		return domain.Order{}, ErrNoOrderLines
	}

	order, err := s.processor.ProcessOrder(req)
	if err != nil {
		return domain.Order{}, err
	}

	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishEvent(ctx, saved, domain.EventOrderCreated)
	return saved, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderNumber string) (domain.Order, error) {
	order, err := s.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.lg.Warn("order not found", logger.String("order_number", orderNumber))
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ListOrders returns the pending orders in creation order. Completed and
// cancelled orders stay out of the admin table.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrder applies an admin edit to a pending order, recalculating
// subtotal, discounts and total.
func (s *OrderService) UpdateOrder(ctx context.Context, orderNumber string, req domain.AdminOrderChangeRequest) (domain.Order, error) {
	if req.Orderer == "" {
		return domain.Order{}, ErrOrdererRequired
	}
	if len(req.OrderLines) == 0 {
		return domain.Order{}, ErrNoOrderLines
	}

	order, err := s.repo.GetByOrderNumberAndStatus(ctx, orderNumber, domain.StatusPending)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.lg.Warn("pending order not found for update", logger.String("order_number", orderNumber))
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("failed to load order for update: %w", err)
	}

	changed, err := s.processor.ProcessChangedOrder(req, order)
	if err != nil {
		return domain.Order{}, err
	}

	saved, err := s.repo.Update(ctx, changed)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.publishEvent(ctx, saved, domain.EventOrderUpdated)
	return saved, nil
}

// DeleteOrder soft-cancels the order, keeping the row for reporting.
func (s *OrderService) DeleteOrder(ctx context.Context, orderNumber string) error {
	order, err := s.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.lg.Warn("order not found for delete", logger.String("order_number", orderNumber))
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to load order for delete: %w", err)
	}

	if err := s.repo.Cancel(ctx, orderNumber); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	order.Status = domain.StatusCancelled
	s.publishEvent(ctx, order, domain.EventOrderCancelled)
	return nil
}

// MostPopularItems aggregates the most ordered drink and topping. Either
// side may be absent when no orders carry that kind of item.
func (s *OrderService) MostPopularItems(ctx context.Context) (domain.PopularItems, error) {
	var popular domain.PopularItems

	drink, drinkCount, err := s.repo.MostPopularDrink(ctx)
	switch {
	case err == nil:
		popular.MostPopularDrink = &drink
		popular.DrinkCount = drinkCount
	case errors.Is(err, repository.ErrNotFound):
		// no drinks ordered yet
	default:
		return domain.PopularItems{}, fmt.Errorf("failed to aggregate drinks: %w", err)
	}

	topping, toppingCount, err := s.repo.MostPopularTopping(ctx)
	switch {
	case err == nil:
		popular.MostPopularTopping = &topping
		popular.ToppingCount = toppingCount
	case errors.Is(err, repository.ErrNotFound):
		// no toppings ordered yet
	default:
		return domain.PopularItems{}, fmt.Errorf("failed to aggregate toppings: %w", err)
	}

	return popular, nil
}

func (s *OrderService) publishEvent(ctx context.Context, order domain.Order, action string) {
	if s.publisher == nil {
		return
	}

	event := domain.OrderEvent{
		OrderNumber:       order.OrderNumber,
		Action:            action,
		Orderer:           order.Orderer,
		Status:            order.Status,
		TotalPriceInCents: order.TotalPriceInCents,
		OccurredAt:        time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		s.lg.Error("failed to marshal order event", logger.Error(err))
		return
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.publisher.Publish(pctx, rabbitmq.EventsExchange, action, body); err != nil {
		s.lg.Error("failed to publish order event",
			logger.String("order_number", order.OrderNumber),
			logger.String("action", action),
			logger.Error(err))
	}
}
