package adminclient

import (
	"context"
	"errors"
	"strconv"
)

// ErrNothingSelected is returned when a confirm fires without a selection.
var ErrNothingSelected = errors.New("nothing selected")

// DeleteConfirmation is the two-step delete prompt: it holds the selected
// identifier between the request and the confirmation. Confirming always
// closes the prompt, whether the delete succeeded or not.
type DeleteConfirmation struct {
	id   string
	open bool
}

func (d *DeleteConfirmation) Open(id string) {
	d.id = id
	d.open = true
}

func (d *DeleteConfirmation) IsOpen() bool { return d.open }

func (d *DeleteConfirmation) Cancel() {
	d.id = ""
	d.open = false
}

// Confirm runs the delete for the held identifier and closes the prompt
// regardless of the outcome.
func (d *DeleteConfirmation) Confirm(ctx context.Context, do func(ctx context.Context, id string) error) error {
	if !d.open || d.id == "" {
		return ErrNothingSelected
	}
	id := d.id
	d.Cancel()
	return do(ctx, id)
}

// OrdersController drives the orders page: list table, detail view, edit
// form and delete confirmation. Identifiers are threaded through each action
// rather than stashed in shared page state.
type OrdersController struct {
	client   *Client
	loader   *TableLoader[OrderRow]
	notifier Notifier
	confirm  DeleteConfirmation
}

func NewOrdersController(client *Client, sink func(TableUpdate[OrderRow]), notifier Notifier) *OrdersController {
	c := &OrdersController{client: client, notifier: notifier}
	c.loader = NewTableLoader(
		func(ctx context.Context) ([]OrderRow, error) {
			orders, err := client.ListOrders(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]OrderRow, 0, len(orders))
			for _, o := range orders {
				rows = append(rows, NewOrderRow(o))
			}
			return rows, nil
		},
		sink,
		notifier,
		"Failed to load orders.",
	)
	return c
}

// Refresh reloads the orders table.
func (c *OrdersController) Refresh(ctx context.Context) {
	c.loader.Load(ctx)
}

// ViewOrder fetches one order and builds its read-only detail view. Nothing
// is rendered on failure.
func (c *OrdersController) ViewOrder(ctx context.Context, orderNumber string) (OrderDetail, error) {
	order, err := c.client.GetOrder(ctx, orderNumber)
	if err != nil {
		c.notifyError(err, "Failed to load order details.")
		return OrderDetail{}, err
	}
	return NewOrderDetail(order), nil
}

// EditOrder fetches one order and populates the edit form from it.
func (c *OrdersController) EditOrder(ctx context.Context, orderNumber string) (*OrderForm, error) {
	order, err := c.client.GetOrder(ctx, orderNumber)
	if err != nil {
		c.notifyError(err, "Failed to load order details for editing.")
		return nil, err
	}
	return NewOrderForm(order), nil
}

// SaveOrder validates and submits the edit form. Validation failures and
// rejected submissions are notified and returned so the form stays open for
// correction; on success the table is reloaded.
func (c *OrdersController) SaveOrder(ctx context.Context, form *OrderForm) error {
	req, err := form.BuildChangeRequest()
	if err != nil {
		c.notifyError(err, err.Error())
		return err
	}

	if _, err := c.client.UpdateOrder(ctx, form.OrderNumber, req); err != nil {
		c.notifyError(err, "Failed to update order.")
		return err
	}

	c.notifier.Notify(Notification{
		Severity: SeveritySuccess,
		Title:    "Success",
		Message:  "Order updated successfully.",
	})
	c.Refresh(ctx)
	return nil
}

// RequestDelete opens the confirmation prompt for the given order.
func (c *OrdersController) RequestDelete(orderNumber string) {
	c.confirm.Open(orderNumber)
}

// CancelDelete closes the prompt without deleting.
func (c *OrdersController) CancelDelete() {
	c.confirm.Cancel()
}

// ConfirmDelete issues the delete for the selected order. The prompt closes
// either way; the table is reloaded only after a success.
func (c *OrdersController) ConfirmDelete(ctx context.Context) error {
	return c.confirm.Confirm(ctx, func(ctx context.Context, orderNumber string) error {
		if err := c.client.DeleteOrder(ctx, orderNumber); err != nil {
			c.notifyError(err, "Failed to delete order.")
			return err
		}
		c.notifier.Notify(Notification{
			Severity: SeveritySuccess,
			Title:    "Success",
			Message:  "Order deleted successfully.",
		})
		c.Refresh(ctx)
		return nil
	})
}

func (c *OrdersController) notifyError(err error, fallback string) {
	c.notifier.Notify(Notification{
		Severity: SeverityError,
		Title:    "Error",
		Message:  ErrorMessage(err, fallback),
	})
}

// ProductsController drives the products page: list table, create/edit
// form, delete confirmation and the most-popular panel.
type ProductsController struct {
	client   *Client
	loader   *TableLoader[ProductRow]
	notifier Notifier
	confirm  DeleteConfirmation
}

func NewProductsController(client *Client, sink func(TableUpdate[ProductRow]), notifier Notifier) *ProductsController {
	c := &ProductsController{client: client, notifier: notifier}
	c.loader = NewTableLoader(
		func(ctx context.Context) ([]ProductRow, error) {
			products, err := client.ListProducts(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]ProductRow, 0, len(products))
			for _, p := range products {
				rows = append(rows, NewProductRow(p))
			}
			return rows, nil
		},
		sink,
		notifier,
		"Failed to load products.",
	)
	return c
}

func (c *ProductsController) Refresh(ctx context.Context) {
	c.loader.Load(ctx)
}

// NewProduct opens a blank create form.
func (c *ProductsController) NewProduct() *ProductForm {
	return &ProductForm{}
}

// EditProduct fetches one product and populates the edit form from it.
func (c *ProductsController) EditProduct(ctx context.Context, id int64) (*ProductForm, error) {
	product, err := c.client.GetProduct(ctx, id)
	if err != nil {
		c.notifyError(err, "Failed to load product details.")
		return nil, err
	}
	return NewProductForm(product), nil
}

// SaveProduct validates and submits the form, creating when the form has no
// identifier and updating otherwise.
func (c *ProductsController) SaveProduct(ctx context.Context, form *ProductForm) error {
	if form.ID == 0 {
		req, err := form.BuildCreateRequest()
		if err != nil {
			c.notifyError(err, err.Error())
			return err
		}
		if _, err := c.client.CreateProduct(ctx, req); err != nil {
			c.notifyError(err, "Failed to create product.")
			return err
		}
		c.notifier.Notify(Notification{
			Severity: SeveritySuccess,
			Title:    "Success",
			Message:  "Product created successfully.",
		})
	} else {
		req, err := form.BuildChangeRequest()
		if err != nil {
			c.notifyError(err, err.Error())
			return err
		}
		if _, err := c.client.UpdateProduct(ctx, form.ID, req); err != nil {
			c.notifyError(err, "Failed to update product.")
			return err
		}
		c.notifier.Notify(Notification{
			Severity: SeveritySuccess,
			Title:    "Success",
			Message:  "Product updated successfully.",
		})
	}

	c.Refresh(ctx)
	return nil
}

func (c *ProductsController) RequestDelete(id int64) {
	c.confirm.Open(strconv.FormatInt(id, 10))
}

func (c *ProductsController) CancelDelete() {
	c.confirm.Cancel()
}

// ConfirmDelete issues the delete for the selected product. The prompt
// closes either way.
func (c *ProductsController) ConfirmDelete(ctx context.Context) error {
	return c.confirm.Confirm(ctx, func(ctx context.Context, id string) error {
		productID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return err
		}
		if err := c.client.DeleteProduct(ctx, productID); err != nil {
			c.notifyError(err, "Failed to delete product.")
			return err
		}
		c.notifier.Notify(Notification{
			Severity: SeveritySuccess,
			Title:    "Success",
			Message:  "Product deleted successfully.",
		})
		c.Refresh(ctx)
		return nil
	})
}

// Popular fetches the most-popular aggregate. Transport failure renders the
// inline per-section error text instead of going through the notifier.
func (c *ProductsController) Popular(ctx context.Context) PopularPanel {
	popular, err := c.client.MostPopular(ctx)
	return NewPopularPanel(popular, err)
}

func (c *ProductsController) notifyError(err error, fallback string) {
	c.notifier.Notify(Notification{
		Severity: SeverityError,
		Title:    "Error",
		Message:  ErrorMessage(err, fallback),
	})
}
