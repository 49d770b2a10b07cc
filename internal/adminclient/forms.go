package adminclient

import (
	"errors"

	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
	"github.com/ragnar-alan/coffeStoreAPI/internal/money"
)

// Form validation failures. Each maps to one fixed user-facing message and
// is raised before any request is sent.
var (
	ErrOrdererRequired     = errors.New("orderer name is required")
	ErrNoValidLines        = errors.New("at least one order line is required")
	ErrProductNameRequired = errors.New("product name is required")
	ErrProductTypeRequired = errors.New("product type is required")
	ErrProductPriceInvalid = errors.New("please enter a valid price")
)

// OrderLineForm is one editable line row: a drink selection, a topping set
// and a price as the user typed it.
type OrderLineForm struct {
	Drink    string
	Toppings []string
	Price    string
}

// OrderForm is the edit form for an order: the orderer plus a freely
// extensible list of line rows.
type OrderForm struct {
	OrderNumber string
	Orderer     string
	Lines       []OrderLineForm
}

// NewOrderForm populates the form from a fetched order. An order without
// lines still gets one blank row to edit.
func NewOrderForm(order domain.OrderResponse) *OrderForm {
	form := &OrderForm{
		OrderNumber: order.OrderNumber,
		Orderer:     order.Orderer,
	}
	for _, line := range order.OrderLines {
		toppings := make([]string, 0, len(line.Toppings))
		for _, t := range line.Toppings {
			toppings = append(toppings, string(t))
		}
		form.Lines = append(form.Lines, OrderLineForm{
			Drink:    string(line.Drink),
			Toppings: toppings,
			Price:    line.PriceInCents.Euros().StringFixed(2),
		})
	}
	if len(form.Lines) == 0 {
		form.AddLine()
	}
	return form
}

// AddLine appends a blank row.
func (f *OrderForm) AddLine() {
	f.Lines = append(f.Lines, OrderLineForm{})
}

// RemoveLine drops row i. Removal is immediate and client-only.
func (f *OrderForm) RemoveLine(i int) {
	if i < 0 || i >= len(f.Lines) {
		return
	}
	f.Lines = append(f.Lines[:i], f.Lines[i+1:]...)
}

// BuildChangeRequest collects the rows into a PATCH body. Rows without a
// selected drink or with a price that does not parse are silently dropped;
// only an empty orderer or zero surviving rows block submission.
func (f *OrderForm) BuildChangeRequest() (domain.AdminOrderChangeRequest, error) {
	if f.Orderer == "" {
		return domain.AdminOrderChangeRequest{}, ErrOrdererRequired
	}

	lines := make([]domain.OrderLineChange, 0, len(f.Lines))
	for _, row := range f.Lines {
		if row.Drink == "" {
			continue
		}
		price, err := money.ParseEuros(row.Price)
		if err != nil {
			continue
		}
		toppings := row.Toppings
		if toppings == nil {
			toppings = []string{}
		}
		lines = append(lines, domain.OrderLineChange{
			Drink:        row.Drink,
			Toppings:     toppings,
			PriceInCents: price,
		})
	}

	if len(lines) == 0 {
		return domain.AdminOrderChangeRequest{}, ErrNoValidLines
	}

	return domain.AdminOrderChangeRequest{
		Orderer:    f.Orderer,
		OrderLines: lines,
	}, nil
}

// ProductForm is the create/edit form for a product. All three fields are
// required and the price must parse as a positive amount.
type ProductForm struct {
	ID    int64
	Name  string
	Type  string
	Price string
}

// NewProductForm populates the form from a fetched product.
func NewProductForm(p domain.ProductResponse) *ProductForm {
	return &ProductForm{
		ID:    p.ID,
		Name:  p.Name,
		Type:  p.Type,
		Price: p.PriceInCents.Euros().StringFixed(2),
	}
}

func (f *ProductForm) validate() (money.Cents, error) {
	if f.Name == "" {
		return 0, ErrProductNameRequired
	}
	if f.Type == "" {
		return 0, ErrProductTypeRequired
	}
	price, err := money.ParseEuros(f.Price)
	if err != nil || price <= 0 {
		return 0, ErrProductPriceInvalid
	}
	return price, nil
}

// BuildCreateRequest validates the form and produces the POST body, with
// the price converted to cents.
func (f *ProductForm) BuildCreateRequest() (domain.ProductCreateRequest, error) {
	price, err := f.validate()
	if err != nil {
		return domain.ProductCreateRequest{}, err
	}
	return domain.ProductCreateRequest{
		Name:         f.Name,
		Type:         f.Type,
		PriceInCents: price,
	}, nil
}

// BuildChangeRequest validates the form and produces the PATCH body.
func (f *ProductForm) BuildChangeRequest() (domain.ProductChangeRequest, error) {
	price, err := f.validate()
	if err != nil {
		return domain.ProductChangeRequest{}, err
	}
	return domain.ProductChangeRequest{
		Name:         &f.Name,
		Type:         &f.Type,
		PriceInCents: &price,
	}, nil
}
