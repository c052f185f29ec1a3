package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urolovforever/eccomerce/audit"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

type TagInput struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

func CreateTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TagInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		tag := models.Tag{Name: input.Name, Slug: input.Slug, Color: input.Color}
		if err := db.Create(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Duplicate tag name or slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
			return
		}

		audit.Record(db, c, models.ActionCreate, models.AuditedTag, tag.ID, tag.Name, nil)

		c.JSON(http.StatusCreated, tag)
	}
}

func GetAllTags(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Tag{}).Order("name")
		if c.Query("active") == "true" {
			query = query.Where("is_active = ?", true)
		}

		var tags []models.Tag
		if err := query.Find(&tags).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tags"})
			return
		}

		c.JSON(http.StatusOK, tags)
	}
}

func UpdateTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tag models.Tag
		if err := db.First(&tag, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
			return
		}

		var input struct {
			Name  *string `json:"name"`
			Color *string `json:"color" binding:"omitempty,hexcolor"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		changes := map[string]interface{}{}
		if input.Name != nil && *input.Name != tag.Name {
			audit.Diff(changes, "name", tag.Name, *input.Name)
			tag.Name = *input.Name
		}
		if input.Color != nil && *input.Color != tag.Color {
			audit.Diff(changes, "color", tag.Color, *input.Color)
			tag.Color = *input.Color
		}

		if err := db.Save(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Duplicate tag name"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tag"})
			return
		}

		audit.Record(db, c, models.ActionUpdate, models.AuditedTag, tag.ID, tag.Name, changes)

		c.JSON(http.StatusOK, tag)
	}
}

func DeleteTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tag models.Tag
		if err := db.First(&tag, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Model(&tag).Association("Products").Clear(); err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear product associations"})
			return
		}
		if err := tx.Delete(&tag).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		audit.Record(db, c, models.ActionDelete, models.AuditedTag, tag.ID, tag.Name, nil)

		c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
	}
}
