package service

import (
	"fmt"
	"time"

	"github.com/ragnar-alan/coffeStoreAPI/internal/config"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
	"github.com/ragnar-alan/coffeStoreAPI/internal/money"
)

// Promotion thresholds. Subtotals over €12 qualify for the percentage
// discount, carts with three or more drinks get the cheapest one free.
const (
	quarterDiscountThreshold = money.Cents(1200)
	quarterDiscountPercent   = 25
	freeItemMinimumLines     = 3
)

// OrderProcessor recalculates subtotal, discounts and total when an order
// changes. Only the single most valuable discount is applied.
type OrderProcessor struct {
	settings config.DiscountConfig
}

func NewOrderProcessor(settings config.DiscountConfig) *OrderProcessor {
	return &OrderProcessor{settings: settings}
}

// ProcessOrder builds a new pending order from a customer request: order
// number, currency (EUR when none given), lines, subtotal, discounts, total.
// Every line must name a drink.
func (p *OrderProcessor) ProcessOrder(req domain.OrderCreateRequest) (domain.Order, error) {
	changes := make([]domain.OrderLineChange, 0, len(req.OrderLines))
	for _, line := range req.OrderLines {
		if line.Drink == "" {
			return domain.Order{}, ErrDrinkRequired
		}
		changes = append(changes, domain.OrderLineChange{
			Drink:        line.Drink,
			Toppings:     line.Toppings,
			PriceInCents: line.PriceInCents,
		})
	}
	lines, err := convertLines(changes)
	if err != nil {
		return domain.Order{}, err
	}

	currency := domain.CurrencyEUR
	if req.Currency != "" {
		currency, err = domain.ParseCurrency(req.Currency)
		if err != nil {
			return domain.Order{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, err)
		}
	}

	subtotal := p.CalculateSubtotal(lines)
	discounts := p.CalculateDiscounts(lines, subtotal)

	return domain.Order{
		OrderNumber:          GenerateOrderNumber(time.Now().UTC()),
		Orderer:              req.Orderer,
		Status:               domain.StatusPending,
		Currency:             currency,
		OrderLines:           lines,
		SubTotalPriceInCents: subtotal,
		Discounts:            discounts,
		TotalPriceInCents:    subtotal - p.discountValue(discounts, subtotal),
	}, nil
}

// GenerateOrderNumber produces "RCS-" plus a millisecond timestamp.
func GenerateOrderNumber(t time.Time) string {
	return fmt.Sprintf("RCS-%s%03d", t.Format("20060102150405"), t.Nanosecond()/int(time.Millisecond))
}

// ProcessChangedOrder applies an admin edit to an existing order and
// recomputes its prices.
func (p *OrderProcessor) ProcessChangedOrder(req domain.AdminOrderChangeRequest, order domain.Order) (domain.Order, error) {
	lines, err := convertLines(req.OrderLines)
	if err != nil {
		return domain.Order{}, err
	}

	subtotal := p.CalculateSubtotal(lines)
	discounts := p.CalculateDiscounts(lines, subtotal)

	order.Orderer = req.Orderer
	order.OrderLines = lines
	order.SubTotalPriceInCents = subtotal
	order.Discounts = discounts
	order.TotalPriceInCents = subtotal - p.discountValue(discounts, subtotal)
	return order, nil
}

func (p *OrderProcessor) CalculateSubtotal(lines []domain.OrderLine) money.Cents {
	var subtotal money.Cents
	for _, line := range lines {
		subtotal += line.PriceInCents
	}
	return subtotal
}

// CalculateDiscounts returns the applicable promotion, keeping only the one
// that yields the lowest cart amount.
func (p *OrderProcessor) CalculateDiscounts(lines []domain.OrderLine, subtotal money.Cents) []domain.Discount {
	if !p.settings.Enabled || len(lines) == 0 {
		return nil
	}

	var candidates []domain.Discount

	if p.settings.TwentyFivePercent && subtotal > quarterDiscountThreshold {
		pct := quarterDiscountPercent
		candidates = append(candidates, domain.Discount{
			Name:       "25% off over €12",
			Percentage: &pct,
		})
	}

	if p.settings.FreeItemAfterThree && len(lines) >= freeItemMinimumLines {
		cheapest := lines[0].PriceInCents
		for _, line := range lines[1:] {
			if line.PriceInCents < cheapest {
				cheapest = line.PriceInCents
			}
		}
		candidates = append(candidates, domain.Discount{
			Name:          "Cheapest drink free",
			AmountInCents: &cheapest,
		})
	}

	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates
	}

	// on equal value the free-item discount wins over the percentage one
	best := candidates[0]
	for _, d := range candidates[1:] {
		if p.singleDiscountValue(d, subtotal) >= p.singleDiscountValue(best, subtotal) {
			best = d
		}
	}
	return []domain.Discount{best}
}

func (p *OrderProcessor) discountValue(discounts []domain.Discount, subtotal money.Cents) money.Cents {
	var max money.Cents
	for _, d := range discounts {
		if v := p.singleDiscountValue(d, subtotal); v > max {
			max = v
		}
	}
	return max
}

func (p *OrderProcessor) singleDiscountValue(d domain.Discount, subtotal money.Cents) money.Cents {
	if d.Percentage != nil {
		return subtotal * money.Cents(*d.Percentage) / 100
	}
	if d.AmountInCents != nil {
		return *d.AmountInCents
	}
	return 0
}

func convertLines(changes []domain.OrderLineChange) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0, len(changes))
	for _, c := range changes {
		drink, err := domain.ParseDrink(c.Drink)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOrderLine, err)
		}
		toppings := make([]domain.Topping, 0, len(c.Toppings))
		for _, t := range c.Toppings {
			topping, err := domain.ParseTopping(t)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidOrderLine, err)
			}
			toppings = append(toppings, topping)
		}
		if c.PriceInCents < 0 {
			return nil, fmt.Errorf("%w: negative price", ErrInvalidOrderLine)
		}
		lines = append(lines, domain.OrderLine{
			Drink:        drink,
			Toppings:     toppings,
			PriceInCents: c.PriceInCents,
		})
	}
	return lines, nil
}
