package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ragnar-alan/coffeStoreAPI/internal/money"
)

// Drink is one of the beverages a line can order.
type Drink string

const (
	DrinkCappuccino Drink = "CAPPUCCINO"
	DrinkCoffee     Drink = "COFFEE"
	DrinkLatte      Drink = "LATTE"
	DrinkTea        Drink = "TEA"
)

func ParseDrink(s string) (Drink, error) {
	d := Drink(strings.ToUpper(s))
	switch d {
	case DrinkCappuccino, DrinkCoffee, DrinkLatte, DrinkTea:
		return d, nil
	}
	return "", fmt.Errorf("unknown drink: %q", s)
}

// Topping is an add-on for a drink. Toppings on a line are a set,
// membership only.
type Topping string

const (
	ToppingMilk      Topping = "MILK"
	ToppingChocolate Topping = "CHOCOLATE"
	ToppingSugar     Topping = "SUGAR"
)

func ParseTopping(s string) (Topping, error) {
	t := Topping(strings.ToUpper(s))
	switch t {
	case ToppingMilk, ToppingChocolate, ToppingSugar:
		return t, nil
	}
	return "", fmt.Errorf("unknown topping: %q", s)
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyHUF Currency = "HUF"
)

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(s))
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyHUF:
		return c, nil
	}
	return "", fmt.Errorf("unknown currency: %q", s)
}

// OrderLine is one item of an order: a drink, an unordered set of toppings
// and its price in cents.
type OrderLine struct {
	Drink        Drink       `json:"drink"`
	Toppings     []Topping   `json:"toppings"`
	PriceInCents money.Cents `json:"price_in_cents"`
}

// Discount names a reduction applied to an order. Exactly one of Percentage
// and AmountInCents is set.
type Discount struct {
	Name          string       `json:"name"`
	Percentage    *int         `json:"percentage,omitempty"`
	AmountInCents *money.Cents `json:"amount_in_cents,omitempty"`
}

type Order struct {
	ID                   int64
	OrderNumber          string
	Orderer              string
	Status               OrderStatus
	Discounts            []Discount
	SubTotalPriceInCents money.Cents
	TotalPriceInCents    money.Cents
	Currency             Currency
	OrderLines           []OrderLine
	CreatedAt            time.Time
	UpdatedAt            *time.Time
	ProcessedAt          *time.Time
	CompletedAt          *time.Time
	CanceledAt           *time.Time
}

// Product is a catalogue entry. Type is a free-text category.
type Product struct {
	ID           int64
	Name         string
	Type         string
	PriceInCents money.Cents
	IsFavorite   bool
}

// PopularItems is the most-popular aggregate over all order lines.
// Either side may be absent when nothing was ordered yet.
type PopularItems struct {
	MostPopularDrink   *string
	DrinkCount         int64
	MostPopularTopping *string
	ToppingCount       int64
}
