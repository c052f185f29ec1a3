package models

import "time"

// ProductImage is one entry of a product's gallery. Galleries are read in
// (display_order, created_at) order.
type ProductImage struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    uint      `gorm:"not null;index:idx_product_image_order" json:"product_id"`
	Image        string    `gorm:"not null" json:"image"`
	AltText      string    `gorm:"size:200" json:"alt_text"`
	DisplayOrder int       `gorm:"default:0;index:idx_product_image_order" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
