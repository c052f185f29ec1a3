package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urolovforever/eccomerce/audit"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ParentID     *uint  `json:"parent_id"`
	Image        string `json:"image"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.ParentID != nil {
			var parent models.Category
			if err := db.First(&parent, *input.ParentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category does not exist"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate parent"})
				return
			}
		}

		category := models.Category{
			Name:         input.Name,
			Slug:         input.Slug,
			Description:  input.Description,
			ParentID:     input.ParentID,
			Image:        input.Image,
			DisplayOrder: input.DisplayOrder,
		}
		if err := db.Create(&category).Error; err != nil {
			switch {
			case errors.Is(err, models.ErrCategoryCycle):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, gorm.ErrDuplicatedKey):
				c.JSON(http.StatusConflict, gin.H{"error": "Duplicate category slug"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			}
			return
		}

		if input.IsActive != nil && !*input.IsActive {
			if err := db.Model(&category).UpdateColumn("is_active", false).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
				return
			}
			category.IsActive = false
		}

		audit.Record(db, c, models.ActionCreate, models.AuditedCategory, category.ID, category.Name, nil)

		c.JSON(http.StatusCreated, category)
	}
}

// GetAllCategories returns all categories in (display_order, name) order.
// ?active=true narrows to active ones, ?root=true to top-level ones.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Category{}).Order("display_order, name")
		if c.Query("active") == "true" {
			query = query.Where("is_active = ?", true)
		}
		if c.Query("root") == "true" {
			query = query.Where("parent_id IS NULL")
		}

		var categories []models.Category
		if err := query.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order, name")
		}).First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		fullPath, err := category.FullPath(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve category path"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"category": category, "full_path": fullPath})
	}
}

// GetCategoryChildren returns every active descendant of a category, flat.
func GetCategoryChildren(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		children, err := category.GetAllChildren(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect children"})
			return
		}

		c.JSON(http.StatusOK, children)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		var input struct {
			Name         *string `json:"name"`
			Description  *string `json:"description"`
			ParentID     *uint   `json:"parent_id"`
			Image        *string `json:"image"`
			DisplayOrder *int    `json:"display_order"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		changes := map[string]interface{}{}
		if input.Name != nil && *input.Name != category.Name {
			// the slug stays as it was, renames do not regenerate it
			audit.Diff(changes, "name", category.Name, *input.Name)
			category.Name = *input.Name
		}
		if input.Description != nil {
			category.Description = *input.Description
		}
		if input.ParentID != nil {
			audit.Diff(changes, "parent_id", category.ParentID, *input.ParentID)
			category.ParentID = input.ParentID
		}
		if input.Image != nil {
			category.Image = *input.Image
		}
		if input.DisplayOrder != nil && *input.DisplayOrder != category.DisplayOrder {
			audit.Diff(changes, "display_order", category.DisplayOrder, *input.DisplayOrder)
			category.DisplayOrder = *input.DisplayOrder
		}

		if err := db.Save(&category).Error; err != nil {
			if errors.Is(err, models.ErrCategoryCycle) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		audit.Record(db, c, models.ActionUpdate, models.AuditedCategory, category.ID, category.Name, changes)

		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategory removes a category and its subtree, unless any product in
// the subtree still references one of the categories.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			if errors.Is(err, models.ErrCategoryHasProducts) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		audit.Record(db, c, models.ActionDelete, models.AuditedCategory, category.ID, category.Name, nil)

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

func setCategoryActive(db *gorm.DB, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if err := db.Model(&category).UpdateColumn("is_active", active).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		category.IsActive = active

		action := models.ActionActivate
		if !active {
			action = models.ActionDeactivate
		}
		audit.Record(db, c, action, models.AuditedCategory, category.ID, category.Name, nil)

		c.JSON(http.StatusOK, category)
	}
}

func ActivateCategory(db *gorm.DB) gin.HandlerFunc   { return setCategoryActive(db, true) }
func DeactivateCategory(db *gorm.DB) gin.HandlerFunc { return setCategoryActive(db, false) }
