package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up User, Admin, and Order
// route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// 2️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)

	// order routes
	SetupOrderRoutes(r, db)
}
