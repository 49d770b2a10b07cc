// Package adminclient is the programmatic face of the back-office: it talks
// to the admin REST API and carries the table loading, form handling and
// notification behavior the admin pages are built from.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

// APIError is a non-2xx reply from the admin API. Message holds the
// server-provided text when the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("admin api status %d", e.StatusCode)
}

// ErrorMessage returns the server-provided message when err carries one,
// otherwise the given fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.SimpleOrderResponse, error) {
	var orders []domain.SimpleOrderResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/orders/list", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderNumber string) (domain.OrderResponse, error) {
	var order domain.OrderResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/orders/"+url.PathEscape(orderNumber), nil, &order)
	return order, err
}

func (c *Client) UpdateOrder(ctx context.Context, orderNumber string, req domain.AdminOrderChangeRequest) (domain.OrderResponse, error) {
	var order domain.OrderResponse
	err := c.do(ctx, http.MethodPatch, "/api/v1/admin/orders/"+url.PathEscape(orderNumber), req, &order)
	return order, err
}

func (c *Client) DeleteOrder(ctx context.Context, orderNumber string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/admin/orders/"+url.PathEscape(orderNumber), nil, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	var products []domain.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/products/list", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (domain.ProductResponse, error) {
	var product domain.ProductResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/admin/products/%d", id), nil, &product)
	return product, err
}

func (c *Client) CreateProduct(ctx context.Context, req domain.ProductCreateRequest) (domain.ProductResponse, error) {
	var product domain.ProductResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/admin/products", req, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, req domain.ProductChangeRequest) (domain.ProductResponse, error) {
	var product domain.ProductResponse
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/admin/products/%d", id), req, &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/admin/products/%d", id), nil, nil)
}

func (c *Client) MostPopular(ctx context.Context) (domain.PopularItemsResponse, error) {
	var popular domain.PopularItemsResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/admin/products/most-popular", nil, &popular)
	return popular, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	u := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call admin api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody domain.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
