package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Tag is a flat classification marker for products: "New", "Sale",
// "Trending" and so on. The color is a hex string used by the storefront.
type Tag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"size:50;uniqueIndex" json:"slug"`
	Color     string    `gorm:"size:7;default:'#000000'" json:"color"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Products  []Product `gorm:"many2many:product_tags" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = slug.Make(t.Name)
	}
	return nil
}
