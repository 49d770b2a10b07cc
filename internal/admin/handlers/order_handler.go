package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/service"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

type OrderHandler struct {
	service service.OrderServiceInterface
}

func NewOrderHandler(s service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{service: s}
}

// CreateOrder takes a customer order, answering 201 with a Location header
// pointing at the new resource.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "invalid JSON body"})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", "/api/v1/orders/"+order.OrderNumber)
	c.Status(http.StatusCreated)
}

// ListOrders returns the pending orders as list rows. An empty collection
// is an empty JSON array, not null.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]domain.SimpleOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, domain.OrderToSimpleResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.OrderToResponse(order))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req domain.AdminOrderChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "invalid JSON body"})
		return
	}

	order, err := h.service.UpdateOrder(c.Request.Context(), c.Param("orderNumber"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.OrderToResponse(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.service.DeleteOrder(c.Request.Context(), c.Param("orderNumber")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
