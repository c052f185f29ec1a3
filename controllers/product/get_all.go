package productcontroller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

var productSortColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"stock":      true,
}

// GetProducts lists products with the storefront filters: search, category
// subtree, tag, product type, price range, featured/active flags, sorting.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		tagSlug := c.Query("tag")
		productType := c.Query("product_type")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !productSortColumns[sortBy] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_by"})
			return
		}

		query := db.Model(&models.Product{}).Preload("Category").Preload("Tags")

		if c.DefaultQuery("active", "true") == "true" {
			query = query.Where("products.is_active = ?", true)
		}
		if c.Query("featured") == "true" {
			query = query.Where("products.is_featured = ?", true)
		}

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?",
				likePattern, likePattern,
			)
		}

		if productType != "" {
			pt, err := models.ParseProductType(productType)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_type"})
				return
			}
			query = query.Where("products.product_type = ?", pt)
		}

		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("products.price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("products.price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		// Filtering by a category includes its whole active subtree
		if categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(cid)).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
				return
			}
			descendants, err := category.GetAllChildren(db)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve category tree"})
				return
			}
			ids := []uint{category.ID}
			for i := range descendants {
				ids = append(ids, descendants[i].ID)
			}
			query = query.Where("products.category_id IN ?", ids)
		}

		if tagSlug != "" {
			query = query.
				Joins("JOIN product_tags pt ON pt.product_id = products.id").
				Joins("JOIN tags ON tags.id = pt.tag_id").
				Where("tags.slug = ?", tagSlug)
		}

		orderClause := fmt.Sprintf("products.%s %s", sortBy, sortOrder)
		var products []models.Product
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
