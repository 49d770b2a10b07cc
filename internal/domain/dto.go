package domain

import (
	"time"

	"github.com/ragnar-alan/coffeStoreAPI/internal/money"
)

// Responses use snake_case field names; mutation request bodies use the
// camelCase names the admin pages send.

type OrderResponse struct {
	ID                   int64       `json:"id"`
	OrderNumber          string      `json:"order_number"`
	Orderer              string      `json:"orderer"`
	Status               OrderStatus `json:"status"`
	Discounts            []Discount  `json:"discounts,omitempty"`
	SubTotalPriceInCents money.Cents `json:"sub_total_price_in_cents"`
	TotalPriceInCents    money.Cents `json:"total_price_in_cents"`
	Currency             Currency    `json:"currency"`
	OrderLines           []OrderLine `json:"order_lines"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            *time.Time  `json:"updated_at,omitempty"`
	CanceledAt           *time.Time  `json:"canceled_at,omitempty"`
}

// SimpleOrderResponse is the list-view projection of an order.
type SimpleOrderResponse struct {
	OrderNumber       string      `json:"order_number"`
	Orderer           string      `json:"orderer"`
	Status            OrderStatus `json:"status"`
	Discounts         []Discount  `json:"discounts,omitempty"`
	TotalPriceInCents money.Cents `json:"total_price_in_cents"`
	Currency          Currency    `json:"currency"`
	CreatedAt         time.Time   `json:"created_at"`
}

// OrderLineCreate is one line of a customer order. The customer body uses
// snake_case names, unlike the admin mutation bodies.
type OrderLineCreate struct {
	Drink        string      `json:"drink"`
	Toppings     []string    `json:"toppings"`
	PriceInCents money.Cents `json:"price_in_cents"`
}

// OrderCreateRequest is the POST body for a new customer order.
type OrderCreateRequest struct {
	Orderer    string            `json:"orderer"`
	Currency   string            `json:"currency"`
	OrderLines []OrderLineCreate `json:"order_lines"`
}

type OrderLineChange struct {
	Drink        string      `json:"drink"`
	Toppings     []string    `json:"toppings"`
	PriceInCents money.Cents `json:"priceInCents"`
}

// AdminOrderChangeRequest is the PATCH body for an order edit.
type AdminOrderChangeRequest struct {
	Orderer    string            `json:"orderer"`
	OrderLines []OrderLineChange `json:"orderLines"`
}

type ProductResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"product_name"`
	Type         string      `json:"type"`
	PriceInCents money.Cents `json:"price_in_cents"`
	IsFavorite   bool        `json:"is_favorite"`
}

// ProductCreateRequest is the POST body for a new product.
type ProductCreateRequest struct {
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	PriceInCents money.Cents `json:"priceInCents"`
	IsFavorite   *bool       `json:"isFavorite,omitempty"`
}

// ProductChangeRequest is the PATCH body for a product. Absent fields keep
// the stored values.
type ProductChangeRequest struct {
	Name         *string      `json:"name,omitempty"`
	Type         *string      `json:"type,omitempty"`
	PriceInCents *money.Cents `json:"priceInCents,omitempty"`
	IsFavorite   *bool        `json:"isFavorite,omitempty"`
}

// PopularItemsResponse reports the most ordered drink and topping. A side is
// omitted entirely when nothing of that kind was ordered yet.
type PopularItemsResponse struct {
	MostPopularDrink   *string `json:"most_popular_drink,omitempty"`
	DrinkCount         *int64  `json:"drink_count,omitempty"`
	MostPopularTopping *string `json:"most_popular_topping,omitempty"`
	ToppingCount       *int64  `json:"topping_count,omitempty"`
}

// ErrorResponse is the body of every non-2xx admin API reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

func OrderToResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		Orderer:              o.Orderer,
		Status:               o.Status,
		Discounts:            o.Discounts,
		SubTotalPriceInCents: o.SubTotalPriceInCents,
		TotalPriceInCents:    o.TotalPriceInCents,
		Currency:             o.Currency,
		OrderLines:           o.OrderLines,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
		CanceledAt:           o.CanceledAt,
	}
}

func OrderToSimpleResponse(o Order) SimpleOrderResponse {
	return SimpleOrderResponse{
		OrderNumber:       o.OrderNumber,
		Orderer:           o.Orderer,
		Status:            o.Status,
		Discounts:         o.Discounts,
		TotalPriceInCents: o.TotalPriceInCents,
		Currency:          o.Currency,
		CreatedAt:         o.CreatedAt,
	}
}

func ProductToResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Type:         p.Type,
		PriceInCents: p.PriceInCents,
		IsFavorite:   p.IsFavorite,
	}
}
