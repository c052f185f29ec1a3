package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/urolovforever/eccomerce/controllers/order"
	"github.com/urolovforever/eccomerce/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers checkout and order management endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// User-facing checkout and history (JWT‐protected)
	orderGroup := r.Group("/user/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/checkout", orderControllers.Checkout(db)) // POST /user/orders/checkout
		orderGroup.GET("/", orderControllers.GetUserOrders(db))     // GET /user/orders
		orderGroup.GET("/:id", orderControllers.GetUserOrderByID(db))
	}

	// Admin order management (API‐Key‐protected)
	adminOrders := r.Group("/admin/orders")
	adminOrders.Use(middleware.ValidateAPIKey)
	{
		adminOrders.GET("", orderControllers.GetAllOrders(db))
		adminOrders.GET("/:id", orderControllers.GetOrderByID(db))
		adminOrders.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
	}

	// Live order feed for the admin dashboard
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
