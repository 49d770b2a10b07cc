package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/service"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

type Handler struct {
	OrderHandler   *OrderHandler
	ProductHandler *ProductHandler
}

func New(s *service.Service) *Handler {
	return &Handler{
		OrderHandler:   NewOrderHandler(s.OrderService),
		ProductHandler: NewProductHandler(s.OrderService, s.ProductService),
	}
}

// writeError maps service errors onto status codes. Every failure body
// carries a human-readable message the admin pages surface verbatim.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, service.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrProductExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrOrdererRequired),
		errors.Is(err, service.ErrNoOrderLines),
		errors.Is(err, service.ErrInvalidOrderLine),
		errors.Is(err, service.ErrDrinkRequired),
		errors.Is(err, service.ErrInvalidCurrency),
		errors.Is(err, service.ErrProductNameRequired),
		errors.Is(err, service.ErrProductTypeRequired),
		errors.Is(err, service.ErrProductPriceInvalid):
		status = http.StatusBadRequest
	}
	c.JSON(status, domain.ErrorResponse{Message: err.Error()})
}
