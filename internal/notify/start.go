package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ragnar-alan/coffeStoreAPI/internal/config"
	"github.com/ragnar-alan/coffeStoreAPI/internal/connections/rabbitmq"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
	"github.com/ragnar-alan/coffeStoreAPI/pkg/logger"
)

// Run consumes the order event queue and reports every admin mutation as a
// readable status line. Blocks until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, lg logger.Logger) error {
	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	defer rmq.Close()

	if err := rmq.DeclareTopology(); err != nil {
		return fmt.Errorf("failed to declare rabbitmq topology: %w", err)
	}

	deliveries, err := rmq.Consume(rabbitmq.NotificationsQueue, "order-notifier", 1)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	lg.Info("notification subscriber started", logger.String("queue", rabbitmq.NotificationsQueue))

	return consumeLoop(ctx, deliveries, lg)
}

// consumeLoop acks every decoded event and nacks undecodable ones without
// requeueing. Returns when ctx is canceled or the channel closes.
func consumeLoop(ctx context.Context, deliveries <-chan amqp.Delivery, lg logger.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}

			var event domain.OrderEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				lg.Error("failed to decode order event", logger.Error(err))
				_ = d.Nack(false, false)
				continue
			}

			lg.Info("order event",
				logger.String("order_number", event.OrderNumber),
				logger.String("action", event.Action),
				logger.String("orderer", event.Orderer),
				logger.String("status", string(event.Status)),
				logger.String("total", event.TotalPriceInCents.Format()),
			)
			_ = d.Ack(false)
		}
	}
}
