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

type ProductInput struct {
	Name               string          `json:"name" binding:"required"`
	Slug               string          `json:"slug"`
	SKU                string          `json:"sku"`
	ProductType        string          `json:"product_type"`
	CategoryID         uint            `json:"category_id" binding:"required"`
	TagIDs             []uint          `json:"tag_ids"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage int             `json:"discount_percentage"`
	Colors             []string        `json:"colors"`
	Sizes              []string        `json:"sizes"`
	Stock              int             `json:"stock"`
	Image              string          `json:"image"`
	Image2             string          `json:"image_2"`
	Image3             string          `json:"image_3"`
	IsFeatured         bool            `json:"is_featured"`
	IsActive           *bool           `json:"is_active"`
	MetaTitle          string          `json:"meta_title"`
	MetaDescription    string          `json:"meta_description"`
}

// CreateProduct creates a new product in an existing category, with optional
// tags. Slug and SKU are generated when the request leaves them empty.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		productType := models.ProductTypeRegular
		if input.ProductType != "" {
			pt, err := models.ParseProductType(input.ProductType)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_type"})
				return
			}
			productType = pt
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		var tags []models.Tag
		if len(input.TagIDs) > 0 {
			if err := db.Where("id IN ?", input.TagIDs).Find(&tags).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
				return
			}
			if len(tags) != len(input.TagIDs) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "One or more tags do not exist"})
				return
			}
		}

		product := models.Product{
			Name:               input.Name,
			Slug:               input.Slug,
			SKU:                input.SKU,
			ProductType:        productType,
			CategoryID:         category.ID,
			Tags:               tags,
			Description:        input.Description,
			Price:              input.Price,
			DiscountPercentage: input.DiscountPercentage,
			Colors:             input.Colors,
			Sizes:              input.Sizes,
			Stock:              input.Stock,
			Image:              input.Image,
			Image2:             input.Image2,
			Image3:             input.Image3,
			IsFeatured:         input.IsFeatured,
			MetaTitle:          input.MetaTitle,
			MetaDescription:    input.MetaDescription,
		}

		if err := db.Create(&product).Error; err != nil {
			switch {
			case errors.Is(err, models.ErrNegativePrice),
				errors.Is(err, models.ErrNegativeStock),
				errors.Is(err, models.ErrDiscountOutOfRange):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, gorm.ErrDuplicatedKey):
				c.JSON(http.StatusConflict, gin.H{"error": "Duplicate slug or SKU"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			}
			return
		}

		// default:true column, so an explicit false has to be written separately
		if input.IsActive != nil && !*input.IsActive {
			if err := db.Model(&product).UpdateColumn("is_active", false).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
				return
			}
			product.IsActive = false
		}

		audit.Record(db, c, models.ActionCreate, models.AuditedProduct, product.ID,
			product.Name+" ("+product.SKU+")", nil)

		c.JSON(http.StatusCreated, product)
	}
}
