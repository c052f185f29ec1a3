package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

// galleryOrder preloads a product's gallery in its display order.
func galleryOrder(db *gorm.DB) *gorm.DB {
	return db.Order("display_order, created_at")
}

func findProduct(db *gorm.DB, cond string, value interface{}) (*models.Product, error) {
	var product models.Product
	err := db.Preload("Category").
		Preload("Tags").
		Preload("Images", galleryOrder).
		Where(cond, value).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func respondProduct(c *gin.Context, product *models.Product, err error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":          product,
		"discounted_price": product.DiscountedPrice(),
		"discount_amount":  product.DiscountAmount(),
		"in_stock":         product.IsInStock(),
	})
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := findProduct(db, "id = ?", c.Param("id"))
		respondProduct(c, product, err)
	}
}

// GET /products/slug/:slug
func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := findProduct(db, "slug = ?", c.Param("slug"))
		respondProduct(c, product, err)
	}
}

// GET /products/sku/:sku
func GetProductBySKU(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := findProduct(db, "sku = ?", c.Param("sku"))
		respondProduct(c, product, err)
	}
}
