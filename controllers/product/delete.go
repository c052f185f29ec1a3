package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urolovforever/eccomerce/audit"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

// DeleteProduct removes a product. Gallery images and cart lines referencing
// it go with it through the cascade constraints.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Model(&product).Association("Tags").Clear(); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear tag associations"})
			return
		}

		if err := tx.Delete(&product).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		audit.Record(db, c, models.ActionDelete, models.AuditedProduct, product.ID,
			product.Name+" ("+product.SKU+")", nil)

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
