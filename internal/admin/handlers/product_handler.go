package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/service"
	"github.com/ragnar-alan/coffeStoreAPI/internal/domain"
)

type ProductHandler struct {
	orders   service.OrderServiceInterface
	products service.ProductServiceInterface
}

// NewProductHandler takes both services: the most-popular aggregate is
// computed over orders but served under the products routes.
func NewProductHandler(orders service.OrderServiceInterface, products service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{orders: orders, products: products}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, domain.ProductToResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		return
	}
	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.ProductToResponse(product))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "invalid JSON body"})
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, domain.ProductToResponse(product))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		return
	}

	var req domain.ProductChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "invalid JSON body"})
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.ProductToResponse(product))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		return
	}
	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MostPopular reports the most ordered drink and topping. Sides without any
// data are omitted from the body.
func (h *ProductHandler) MostPopular(c *gin.Context) {
	popular, err := h.orders.MostPopularItems(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	var resp domain.PopularItemsResponse
	if popular.MostPopularDrink != nil {
		resp.MostPopularDrink = popular.MostPopularDrink
		count := popular.DrinkCount
		resp.DrinkCount = &count
	}
	if popular.MostPopularTopping != nil {
		resp.MostPopularTopping = popular.MostPopularTopping
		count := popular.ToppingCount
		resp.ToppingCount = &count
	}
	c.JSON(http.StatusOK, resp)
}

func productID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Message: "invalid product id"})
		return 0, err
	}
	return id, nil
}
