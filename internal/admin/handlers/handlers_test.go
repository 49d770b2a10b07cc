package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/service"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
	"github.com/ragnar-alan/coffeStoreAPI/internal/money"
)

type stubOrderService struct {
	createOrder func(ctx context.Context, req domain.OrderCreateRequest) (domain.Order, error)
	getOrder    func(ctx context.Context, orderNumber string) (domain.Order, error)
	listOrders  func(ctx context.Context) ([]domain.Order, error)
	updateOrder func(ctx context.Context, orderNumber string, req domain.AdminOrderChangeRequest) (domain.Order, error)
	deleteOrder func(ctx context.Context, orderNumber string) error
	mostPopular func(ctx context.Context) (domain.PopularItems, error)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, req domain.OrderCreateRequest) (domain.Order, error) {
	return s.createOrder(ctx, req)
}

func (s *stubOrderService) GetOrder(ctx context.Context, orderNumber string) (domain.Order, error) {
	return s.getOrder(ctx, orderNumber)
}

func (s *stubOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.listOrders(ctx)
}

func (s *stubOrderService) UpdateOrder(ctx context.Context, orderNumber string, req domain.AdminOrderChangeRequest) (domain.Order, error) {
	return s.updateOrder(ctx, orderNumber, req)
}

func (s *stubOrderService) DeleteOrder(ctx context.Context, orderNumber string) error {
	return s.deleteOrder(ctx, orderNumber)
}

func (s *stubOrderService) MostPopularItems(ctx context.Context) (domain.PopularItems, error) {
	return s.mostPopular(ctx)
}

type stubProductService struct {
	getProduct    func(ctx context.Context, id int64) (domain.Product, error)
	listProducts  func(ctx context.Context) ([]domain.Product, error)
	createProduct func(ctx context.Context, req domain.ProductCreateRequest) (domain.Product, error)
	updateProduct func(ctx context.Context, id int64, req domain.ProductChangeRequest) (domain.Product, error)
	deleteProduct func(ctx context.Context, id int64) error
}

func (s *stubProductService) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	return s.getProduct(ctx, id)
}

func (s *stubProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.listProducts(ctx)
}

func (s *stubProductService) CreateProduct(ctx context.Context, req domain.ProductCreateRequest) (domain.Product, error) {
	return s.createProduct(ctx, req)
}

func (s *stubProductService) UpdateProduct(ctx context.Context, id int64, req domain.ProductChangeRequest) (domain.Product, error) {
	return s.updateProduct(ctx, id, req)
}

func (s *stubProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.deleteProduct(ctx, id)
}

func newTestRouter(orders *stubOrderService, products *stubProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &Handler{
		OrderHandler:   NewOrderHandler(orders),
		ProductHandler: NewProductHandler(orders, products),
	})
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderReturnsLocation(t *testing.T) {
	var got domain.OrderCreateRequest
	orders := &stubOrderService{
		createOrder: func(ctx context.Context, req domain.OrderCreateRequest) (domain.Order, error) {
			got = req
			return domain.Order{OrderNumber: "RCS-20260831133742123", Status: domain.StatusPending}, nil
		},
	}
	r := newTestRouter(orders, &stubProductService{})

	body := `{"orderer":"Alice","currency":"EUR","order_lines":[{"drink":"LATTE","toppings":["MILK"],"price_in_cents":300}]}`
	w := doRequest(r, http.MethodPost, "/api/v1/orders", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/orders/RCS-20260831133742123", w.Header().Get("Location"))
	assert.Empty(t, w.Body.String())

	assert.Equal(t, "Alice", got.Orderer)
	require.Len(t, got.OrderLines, 1)
	assert.Equal(t, money.Cents(300), got.OrderLines[0].PriceInCents)
}

func TestCreateOrderWithoutDrinkRejected(t *testing.T) {
	orders := &stubOrderService{
		createOrder: func(ctx context.Context, req domain.OrderCreateRequest) (domain.Order, error) {
			return domain.Order{}, service.ErrDrinkRequired
		},
	}
	r := newTestRouter(orders, &stubProductService{})

	w := doRequest(r, http.MethodPost, "/api/v1/orders", `{"orderer":"Alice","order_lines":[{"price_in_cents":300}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "drink")
}

func TestCustomerOrderRoutesServeReads(t *testing.T) {
	orders := &stubOrderService{
		listOrders: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{{OrderNumber: "RCS-1", Status: domain.StatusPending}}, nil
		},
		getOrder: func(ctx context.Context, orderNumber string) (domain.Order, error) {
			return domain.Order{OrderNumber: orderNumber, Status: domain.StatusPending}, nil
		},
	}
	r := newTestRouter(orders, &stubProductService{})

	w := doRequest(r, http.MethodGet, "/api/v1/orders/list", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_number":"RCS-1"`)

	w = doRequest(r, http.MethodGet, "/api/v1/orders/RCS-2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_number":"RCS-2"`)
}

func TestListOrdersEmptyIsJSONArray(t *testing.T) {
	orders := &stubOrderService{
		listOrders: func(ctx context.Context) ([]domain.Order, error) { return nil, nil },
	}
	r := newTestRouter(orders, &stubProductService{})

	w := doRequest(r, http.MethodGet, "/api/v1/admin/orders/list", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetOrderNotFound(t *testing.T) {
	orders := &stubOrderService{
		getOrder: func(ctx context.Context, orderNumber string) (domain.Order, error) {
			return domain.Order{}, service.ErrOrderNotFound
		},
	}
	r := newTestRouter(orders, &stubProductService{})

	w := doRequest(r, http.MethodGet, "/api/v1/admin/orders/RCS-404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order not found", resp.Message)
}

func TestUpdateOrderBindsCamelCaseBody(t *testing.T) {
	var got domain.AdminOrderChangeRequest
	orders := &stubOrderService{
		updateOrder: func(ctx context.Context, orderNumber string, req domain.AdminOrderChangeRequest) (domain.Order, error) {
			got = req
			return domain.Order{OrderNumber: orderNumber, Orderer: req.Orderer, Status: domain.StatusPending}, nil
		},
	}
	r := newTestRouter(orders, &stubProductService{})

	body := `{"orderer":"Alice","orderLines":[{"drink":"LATTE","toppings":["MILK"],"priceInCents":220}]}`
	w := doRequest(r, http.MethodPatch, "/api/v1/admin/orders/RCS-1", body)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Alice", got.Orderer)
	require.Len(t, got.OrderLines, 1)
	assert.Equal(t, money.Cents(220), got.OrderLines[0].PriceInCents)
	assert.Contains(t, w.Body.String(), `"order_number":"RCS-1"`)
}

func TestUpdateOrderMalformedBody(t *testing.T) {
	r := newTestRouter(&stubOrderService{}, &stubProductService{})

	w := doRequest(r, http.MethodPatch, "/api/v1/admin/orders/RCS-1", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid JSON body")
}

func TestUpdateOrderValidationStatus(t *testing.T) {
	orders := &stubOrderService{
		updateOrder: func(ctx context.Context, orderNumber string, req domain.AdminOrderChangeRequest) (domain.Order, error) {
			return domain.Order{}, service.ErrOrdererRequired
		},
	}
	r := newTestRouter(orders, &stubProductService{})

	w := doRequest(r, http.MethodPatch, "/api/v1/admin/orders/RCS-1", `{"orderer":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrderNoContent(t *testing.T) {
	orders := &stubOrderService{
		deleteOrder: func(ctx context.Context, orderNumber string) error { return nil },
	}
	r := newTestRouter(orders, &stubProductService{})

	w := doRequest(r, http.MethodDelete, "/api/v1/admin/orders/RCS-1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCreateProductCreated(t *testing.T) {
	products := &stubProductService{
		createProduct: func(ctx context.Context, req domain.ProductCreateRequest) (domain.Product, error) {
			return domain.Product{ID: 1, Name: req.Name, Type: req.Type, PriceInCents: req.PriceInCents}, nil
		},
	}
	r := newTestRouter(&stubOrderService{}, products)

	w := doRequest(r, http.MethodPost, "/api/v1/admin/products", `{"name":"Latte","type":"Drinks","priceInCents":350}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"product_name":"Latte"`)
}

func TestCreateProductConflict(t *testing.T) {
	products := &stubProductService{
		createProduct: func(ctx context.Context, req domain.ProductCreateRequest) (domain.Product, error) {
			return domain.Product{}, service.ErrProductExists
		},
	}
	r := newTestRouter(&stubOrderService{}, products)

	w := doRequest(r, http.MethodPost, "/api/v1/admin/products", `{"name":"Latte","type":"Drinks","priceInCents":350}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProductIDMustBeNumeric(t *testing.T) {
	r := newTestRouter(&stubOrderService{}, &stubProductService{})

	w := doRequest(r, http.MethodDelete, "/api/v1/admin/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid product id")
}

func TestMostPopularOmitsAbsentSides(t *testing.T) {
	latte := "LATTE"
	orders := &stubOrderService{
		mostPopular: func(ctx context.Context) (domain.PopularItems, error) {
			return domain.PopularItems{MostPopularDrink: &latte, DrinkCount: 12}, nil
		},
	}
	r := newTestRouter(orders, &stubProductService{})

	w := doRequest(r, http.MethodGet, "/api/v1/admin/products/most-popular", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "LATTE", body["most_popular_drink"])
	assert.Equal(t, float64(12), body["drink_count"])
	assert.NotContains(t, body, "most_popular_topping")
	assert.NotContains(t, body, "topping_count")
}
