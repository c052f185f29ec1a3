package models

import (
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeNew      ProductType = "new"
	ProductTypeDiscount ProductType = "discount"
	ProductTypeRegular  ProductType = "regular"
)

var (
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrNegativeStock      = errors.New("stock must not be negative")
	ErrDiscountOutOfRange = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidProductType = errors.New("invalid product type")
)

type Product struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"size:200;not null" json:"name"`
	Slug        string      `gorm:"size:200;uniqueIndex" json:"slug"`
	SKU         string      `gorm:"size:100;uniqueIndex" json:"sku"`
	ProductType ProductType `gorm:"type:varchar(20);default:'regular';index" json:"product_type"`
	CategoryID  uint        `gorm:"not null;index" json:"category_id"`
	Category    Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags        []Tag       `gorm:"many2many:product_tags" json:"tags,omitempty"`
	Description string      `gorm:"type:text" json:"description"`

	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DiscountPercentage int             `gorm:"default:0" json:"discount_percentage"`

	Colors datatypes.JSONSlice[string] `json:"colors"`
	Sizes  datatypes.JSONSlice[string] `json:"sizes"`
	Stock  int                         `gorm:"default:0" json:"stock"`

	// Inline images plus the ordered gallery. All of these are reference
	// paths, the files themselves live with the media collaborator.
	Image  string         `json:"image"`
	Image2 string         `json:"image_2"`
	Image3 string         `json:"image_3"`
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`

	IsFeatured bool `gorm:"default:false;index" json:"is_featured"`
	IsActive   bool `gorm:"default:true;index" json:"is_active"`

	MetaTitle       string `gorm:"size:200" json:"meta_title"`
	MetaDescription string `gorm:"type:text" json:"meta_description"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSKU returns a fresh stock keeping unit: "PRD-" plus 8 uppercase hex
// characters. Uniqueness is only guaranteed by the column's unique index;
// a caller that hits a conflict retries with a new token.
func NewSKU() string {
	u := uuid.New()
	return "PRD-" + strings.ToUpper(hex.EncodeToString(u[:4]))
}

// BeforeSave validates the field constraints and fills the slug and SKU on
// first save. An already-saved slug or SKU is never regenerated.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if p.DiscountPercentage < 0 || p.DiscountPercentage > 100 {
		return ErrDiscountOutOfRange
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if p.SKU == "" {
		p.SKU = NewSKU()
	}
	return nil
}

var oneHundred = decimal.NewFromInt(100)

// DiscountedPrice is the effective sale price after the percentage discount.
// Prices carry 2 decimal places and percentages are integers, so the
// arithmetic is exact in decimal.
func (p *Product) DiscountedPrice() decimal.Decimal {
	if p.DiscountPercentage > 0 {
		return p.Price.Sub(p.DiscountAmount())
	}
	return p.Price
}

// DiscountAmount is how much the discount takes off the base price, or zero
// when there is no discount.
func (p *Product) DiscountAmount() decimal.Decimal {
	if p.DiscountPercentage <= 0 {
		return decimal.Zero
	}
	return p.Price.Mul(decimal.NewFromInt(int64(p.DiscountPercentage))).Div(oneHundred)
}

func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// ParseProductType maps a request string onto the closed product type set.
func ParseProductType(s string) (ProductType, error) {
	switch strings.ToLower(s) {
	case string(ProductTypeNew):
		return ProductTypeNew, nil
	case string(ProductTypeDiscount):
		return ProductTypeDiscount, nil
	case string(ProductTypeRegular):
		return ProductTypeRegular, nil
	default:
		return "", ErrInvalidProductType
	}
}
