package service

import (
	"context"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/repository"
	"github.com/ragnar-alan/coffeStoreAPI/internal/config"
	"github.com/ragnar-alan/coffeStoreAPI/pkg/logger"
)

// EventPublisherInterface is the slice of the RabbitMQ client the services
// need. Publish failures never fail the admin mutation, they are only logged.
type EventPublisherInterface interface {
	Publish(ctx context.Context, exchange, key string, body []byte) error
}

type Service struct {
	OrderService   OrderServiceInterface
	ProductService ProductServiceInterface
}

func New(
	orders repository.OrderRepositoryInterface,
	products repository.ProductRepositoryInterface,
	publisher EventPublisherInterface,
	discounts config.DiscountConfig,
	lg logger.Logger,
) *Service {
	processor := NewOrderProcessor(discounts)
	return &Service{
		OrderService:   NewOrderService(orders, processor, publisher, lg),
		ProductService: NewProductService(products, lg),
	}
}
