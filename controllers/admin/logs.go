package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

// GetAdminActionLogs lists audit entries newest first, optionally filtered
// by ?action= and ?model= with a ?limit= cap.
// GET /admin/logs
func GetAdminActionLogs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			n, err := strconv.Atoi(limitStr)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}

		entries, err := models.GetRecentAdminActions(db, c.Query("action"), c.Query("model"), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch action logs"})
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}
