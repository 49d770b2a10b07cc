package adminclient

import (
	"fmt"
	"strings"

	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

// View models: plain structs with pre-formatted display strings, built once
// from a response and handed to whatever renders them.

type OrderRow struct {
	OrderNumber string
	Orderer     string
	Status      string
	Total       string
}

func NewOrderRow(o domain.SimpleOrderResponse) OrderRow {
	return OrderRow{
		OrderNumber: o.OrderNumber,
		Orderer:     o.Orderer,
		Status:      string(o.Status),
		Total:       o.TotalPriceInCents.Format(),
	}
}

type ProductRow struct {
	ID    int64
	Name  string
	Type  string
	Price string
}

func NewProductRow(p domain.ProductResponse) ProductRow {
	return ProductRow{
		ID:    p.ID,
		Name:  p.Name,
		Type:  p.Type,
		Price: p.PriceInCents.Format(),
	}
}

type OrderLineView struct {
	Description string
	Price       string
}

type OrderDetail struct {
	OrderNumber string
	Orderer     string
	Status      string
	Subtotal    string
	Total       string
	Currency    string
	Lines       []OrderLineView
	Discounts   []string
}

// NewOrderDetail builds the read-only detail view of an order.
func NewOrderDetail(o domain.OrderResponse) OrderDetail {
	detail := OrderDetail{
		OrderNumber: o.OrderNumber,
		Orderer:     o.Orderer,
		Status:      string(o.Status),
		Subtotal:    o.SubTotalPriceInCents.Format(),
		Total:       o.TotalPriceInCents.Format(),
		Currency:    string(o.Currency),
	}
	for _, line := range o.OrderLines {
		detail.Lines = append(detail.Lines, OrderLineView{
			Description: LineDescription(line),
			Price:       line.PriceInCents.Format(),
		})
	}
	for _, d := range o.Discounts {
		detail.Discounts = append(detail.Discounts, DiscountDisplay(d))
	}
	return detail
}

// LineDescription renders a line as "LATTE with MILK, SUGAR".
func LineDescription(line domain.OrderLine) string {
	description := string(line.Drink)
	if description == "" {
		description = "Unknown Item"
	}
	if len(line.Toppings) > 0 {
		toppings := make([]string, 0, len(line.Toppings))
		for _, t := range line.Toppings {
			toppings = append(toppings, string(t))
		}
		description += " with " + strings.Join(toppings, ", ")
	}
	return description
}

// DiscountValue renders "{percentage}%" for percentage discounts and the
// euro amount otherwise.
func DiscountValue(d domain.Discount) string {
	if d.Percentage != nil {
		return fmt.Sprintf("%d%%", *d.Percentage)
	}
	if d.AmountInCents != nil {
		return d.AmountInCents.Format()
	}
	return ""
}

// DiscountDisplay is the list entry: the discount name plus its value.
func DiscountDisplay(d domain.Discount) string {
	if v := DiscountValue(d); v != "" {
		return fmt.Sprintf("%s - %s", d.Name, v)
	}
	return d.Name
}

const (
	popularNoData    = "No data available"
	popularLoadError = "Error loading data"
)

// PopularPanel is the most-popular display: two independent sections, each
// with its own text.
type PopularPanel struct {
	Drink   string
	Topping string
}

// NewPopularPanel renders the aggregate. Sections report "no data"
// independently; pass an error to render the per-section failure text.
func NewPopularPanel(popular domain.PopularItemsResponse, err error) PopularPanel {
	if err != nil {
		return PopularPanel{Drink: popularLoadError, Topping: popularLoadError}
	}

	panel := PopularPanel{Drink: popularNoData, Topping: popularNoData}
	if popular.MostPopularDrink != nil {
		count := int64(0)
		if popular.DrinkCount != nil {
			count = *popular.DrinkCount
		}
		panel.Drink = fmt.Sprintf("%s (ordered %d times)", *popular.MostPopularDrink, count)
	}
	if popular.MostPopularTopping != nil {
		count := int64(0)
		if popular.ToppingCount != nil {
			count = *popular.ToppingCount
		}
		panel.Topping = fmt.Sprintf("%s (ordered %d times)", *popular.MostPopularTopping, count)
	}
	return panel
}
