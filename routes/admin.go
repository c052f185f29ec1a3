package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/urolovforever/eccomerce/controllers/admin"
	cartControllers "github.com/urolovforever/eccomerce/controllers/cart"
	productcontroller "github.com/urolovforever/eccomerce/controllers/product"
	userControllers "github.com/urolovforever/eccomerce/controllers/user"
	"github.com/urolovforever/eccomerce/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.GET("/:id", productcontroller.GetProductByID(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/:id/activate", productcontroller.ActivateProduct(db))
			productAdmin.POST("/:id/deactivate", productcontroller.DeactivateProduct(db))
			productAdmin.POST("/:id/images", productcontroller.AddProductImage(db))
			productAdmin.GET("/:id/images", productcontroller.GetProductImages(db))
			productAdmin.DELETE("/:id/images/:image_id", productcontroller.DeleteProductImage(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.GET("/:id", productcontroller.GetCategoryByID(db))
			categoryAdmin.GET("/:id/children", productcontroller.GetCategoryChildren(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
			categoryAdmin.POST("/:id/activate", productcontroller.ActivateCategory(db))
			categoryAdmin.POST("/:id/deactivate", productcontroller.DeactivateCategory(db))
		}

		// ─────────── Tag Management ───────────
		tagAdmin := adminGroup.Group("/tags")
		{
			tagAdmin.POST("", productcontroller.CreateTag(db))
			tagAdmin.GET("", productcontroller.GetAllTags(db))
			tagAdmin.PUT("/:id", productcontroller.UpdateTag(db))
			tagAdmin.DELETE("/:id", productcontroller.DeleteTag(db))
		}

		// ─────────── Audit Trail ───────────
		adminGroup.GET("/logs", adminController.GetAdminActionLogs(db))

		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
