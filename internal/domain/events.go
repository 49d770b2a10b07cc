package domain

import (
	"time"

	"github.com/ragnar-alan/coffeStoreAPI/internal/money"
)

// Event actions published on admin order mutations.
const (
	EventOrderCreated   = "order.created"
	EventOrderUpdated   = "order.updated"
	EventOrderCancelled = "order.cancelled"
)

// OrderEvent is the message published to the events exchange whenever an
// admin changes or cancels an order.
type OrderEvent struct {
	OrderNumber       string      `json:"order_number"`
	Action            string      `json:"action"`
	Orderer           string      `json:"orderer"`
	Status            OrderStatus `json:"status"`
	TotalPriceInCents money.Cents `json:"total_price_in_cents"`
	OccurredAt        time.Time   `json:"occurred_at"`
}
