package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the customer ordering endpoints and the admin
// endpoints the back-office pages call.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	public := r.Group("/api/v1/orders")
	{
		public.POST("", h.OrderHandler.CreateOrder)
		public.GET("/list", h.OrderHandler.ListOrders)
		public.GET("/:orderNumber", h.OrderHandler.GetOrder)
	}

	admin := r.Group("/api/v1/admin")
	{
		orders := admin.Group("/orders")
		{
			orders.GET("/list", h.OrderHandler.ListOrders)
			orders.GET("/:orderNumber", h.OrderHandler.GetOrder)
			orders.PATCH("/:orderNumber", h.OrderHandler.UpdateOrder)
			orders.DELETE("/:orderNumber", h.OrderHandler.DeleteOrder)
		}

		products := admin.Group("/products")
		{
			products.GET("/list", h.ProductHandler.ListProducts)
			products.GET("/most-popular", h.ProductHandler.MostPopular)
			products.GET("/:productId", h.ProductHandler.GetProduct)
			products.POST("", h.ProductHandler.CreateProduct)
			products.PATCH("/:productId", h.ProductHandler.UpdateProduct)
			products.DELETE("/:productId", h.ProductHandler.DeleteProduct)
		}
	}
}
