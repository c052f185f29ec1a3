package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/urolovforever/eccomerce/audit"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name               *string          `json:"name"`
	ProductType        *string          `json:"product_type"`
	CategoryID         *uint            `json:"category_id"`
	TagIDs             *[]uint          `json:"tag_ids"`
	Description        *string          `json:"description"`
	Price              *decimal.Decimal `json:"price"`
	DiscountPercentage *int             `json:"discount_percentage"`
	Colors             *[]string        `json:"colors"`
	Sizes              *[]string        `json:"sizes"`
	Stock              *int             `json:"stock"`
	Image              *string          `json:"image"`
	Image2             *string          `json:"image_2"`
	Image3             *string          `json:"image_3"`
	IsFeatured         *bool            `json:"is_featured"`
	MetaTitle          *string          `json:"meta_title"`
	MetaDescription    *string          `json:"meta_description"`
}

// UpdateProduct applies a partial update. The slug and SKU are deliberately
// untouchable here: both are assigned once at creation and stay stable.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		changes := map[string]interface{}{}

		if input.Name != nil && *input.Name != product.Name {
			audit.Diff(changes, "name", product.Name, *input.Name)
			product.Name = *input.Name
		}
		if input.ProductType != nil {
			pt, err := models.ParseProductType(*input.ProductType)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_type"})
				return
			}
			if pt != product.ProductType {
				audit.Diff(changes, "product_type", product.ProductType, pt)
				product.ProductType = pt
			}
		}
		if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
				return
			}
			audit.Diff(changes, "category_id", product.CategoryID, category.ID)
			product.CategoryID = category.ID
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil && !input.Price.Equal(product.Price) {
			audit.Diff(changes, "price", product.Price, *input.Price)
			product.Price = *input.Price
		}
		if input.DiscountPercentage != nil && *input.DiscountPercentage != product.DiscountPercentage {
			audit.Diff(changes, "discount_percentage", product.DiscountPercentage, *input.DiscountPercentage)
			product.DiscountPercentage = *input.DiscountPercentage
		}
		if input.Colors != nil {
			product.Colors = *input.Colors
		}
		if input.Sizes != nil {
			product.Sizes = *input.Sizes
		}
		if input.Stock != nil && *input.Stock != product.Stock {
			audit.Diff(changes, "stock", product.Stock, *input.Stock)
			product.Stock = *input.Stock
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Image2 != nil {
			product.Image2 = *input.Image2
		}
		if input.Image3 != nil {
			product.Image3 = *input.Image3
		}
		if input.IsFeatured != nil && *input.IsFeatured != product.IsFeatured {
			audit.Diff(changes, "is_featured", product.IsFeatured, *input.IsFeatured)
			product.IsFeatured = *input.IsFeatured
		}
		if input.MetaTitle != nil {
			product.MetaTitle = *input.MetaTitle
		}
		if input.MetaDescription != nil {
			product.MetaDescription = *input.MetaDescription
		}

		if err := db.Save(&product).Error; err != nil {
			switch {
			case errors.Is(err, models.ErrNegativePrice),
				errors.Is(err, models.ErrNegativeStock),
				errors.Is(err, models.ErrDiscountOutOfRange):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}

		if input.TagIDs != nil {
			var tags []models.Tag
			if len(*input.TagIDs) > 0 {
				if err := db.Where("id IN ?", *input.TagIDs).Find(&tags).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
					return
				}
				if len(tags) != len(*input.TagIDs) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "One or more tags do not exist"})
					return
				}
			}
			if err := db.Model(&product).Association("Tags").Replace(tags); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tags"})
				return
			}
			audit.Diff(changes, "tags", nil, *input.TagIDs)
		}

		audit.Record(db, c, models.ActionUpdate, models.AuditedProduct, product.ID,
			product.Name+" ("+product.SKU+")", changes)

		c.JSON(http.StatusOK, product)
	}
}

// setProductActive flips is_active and writes the matching audit action.
func setProductActive(db *gorm.DB, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Model(&product).UpdateColumn("is_active", active).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		product.IsActive = active

		action := models.ActionActivate
		if !active {
			action = models.ActionDeactivate
		}
		audit.Record(db, c, action, models.AuditedProduct, product.ID,
			product.Name+" ("+product.SKU+")", nil)

		c.JSON(http.StatusOK, product)
	}
}

// POST /admin/products/:id/activate
func ActivateProduct(db *gorm.DB) gin.HandlerFunc { return setProductActive(db, true) }

// POST /admin/products/:id/deactivate
func DeactivateProduct(db *gorm.DB) gin.HandlerFunc { return setProductActive(db, false) }
