package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/urolovforever/eccomerce/controllers/cart"
	productControllers "github.com/urolovforever/eccomerce/controllers/product"
	userControllers "github.com/urolovforever/eccomerce/controllers/user"
	"github.com/urolovforever/eccomerce/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db)) // GET /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))              // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(db))                  // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(db))           // GET /user/products/:id
		userGroup.GET("/products/:id/images", productControllers.GetProductImages(db))  // GET /user/products/:id/images
		userGroup.GET("/products/slug/:slug", productControllers.GetProductBySlug(db))  // GET /user/products/slug/:slug
		userGroup.GET("/products/sku/:sku", productControllers.GetProductBySKU(db))     // GET /user/products/sku/:sku
		userGroup.GET("/tags", productControllers.GetAllTags(db))                       // GET /user/tags
		userGroup.GET("/categories", productControllers.GetAllCategories(db))           // GET /user/categories
		userGroup.GET("/categories/:id", productControllers.GetCategoryByID(db))        // GET /user/categories/:id
		userGroup.GET("/categories/:id/children", productControllers.GetCategoryChildren(db)) // GET /user/categories/:id/children
	}
}
