package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("ADMIN_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}

	// Optional admin identity, used to attribute audit log entries
	if adminID := c.GetHeader("X-Admin-ID"); adminID != "" {
		c.Set("admin_id", adminID)
	}

	c.Next()
}
