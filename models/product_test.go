package models

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var skuPattern = regexp.MustCompile(`^PRD-[0-9A-F]{8}$`)

func TestNewSKUPattern(t *testing.T) {
	for i := 0; i < 100; i++ {
		sku := NewSKU()
		assert.Regexp(t, skuPattern, sku)
	}
}

func TestNewSKUUnique(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		sku := NewSKU()
		require.False(t, seen[sku], "SKU collision after %d generations: %s", i, sku)
		seen[sku] = true
	}
}

func TestProductSlugAndSKUGeneratedOnCreate(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Shoes", nil)

	product := &Product{
		Name:       "Air Runner 2000",
		CategoryID: category.ID,
		Price:      decimal.RequireFromString("99.90"),
	}
	require.NoError(t, db.Create(product).Error)

	assert.Equal(t, "air-runner-2000", product.Slug)
	assert.Regexp(t, skuPattern, product.SKU)
}

func TestProductKeepsProvidedSlugAndSKU(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Shoes", nil)

	product := &Product{
		Name:       "Air Runner",
		Slug:       "custom-slug",
		SKU:        "PRD-CAFE0123",
		CategoryID: category.ID,
		Price:      decimal.RequireFromString("10.00"),
	}
	require.NoError(t, db.Create(product).Error)

	assert.Equal(t, "custom-slug", product.Slug)
	assert.Equal(t, "PRD-CAFE0123", product.SKU)
}

func TestDuplicateSKURejected(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Shoes", nil)

	first := &Product{Name: "One", SKU: "PRD-AAAA1111", CategoryID: category.ID, Price: decimal.RequireFromString("1.00")}
	require.NoError(t, db.Create(first).Error)

	second := &Product{Name: "Two", SKU: "PRD-AAAA1111", CategoryID: category.ID, Price: decimal.RequireFromString("2.00")}
	err := db.Create(second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDiscountedPriceWithoutDiscount(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	p := &Product{Price: price, DiscountPercentage: 0}

	assert.True(t, p.DiscountedPrice().Equal(price))
	assert.True(t, p.DiscountAmount().IsZero())
}

func TestDiscountedPriceWithDiscount(t *testing.T) {
	p := &Product{
		Price:              decimal.RequireFromString("19.99"),
		DiscountPercentage: 15,
	}

	want := decimal.RequireFromString("16.9915")
	assert.True(t, p.DiscountedPrice().Equal(want),
		"got %s, want %s", p.DiscountedPrice(), want)
	assert.True(t, p.DiscountAmount().Equal(decimal.RequireFromString("2.9985")))
}

func TestDiscountedPriceMatchesComplement(t *testing.T) {
	// discounted == price * (100 - pct) / 100, exactly, for the whole range
	price := decimal.RequireFromString("123.45")
	for pct := 0; pct <= 100; pct++ {
		p := &Product{Price: price, DiscountPercentage: pct}
		want := price.Mul(decimal.NewFromInt(int64(100 - pct))).Div(decimal.NewFromInt(100))
		assert.True(t, p.DiscountedPrice().Equal(want),
			"pct=%d: got %s, want %s", pct, p.DiscountedPrice(), want)
	}
}

func TestIsInStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 1}).IsInStock())
	assert.False(t, (&Product{Stock: 0}).IsInStock())
}

func TestProductValidation(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Shoes", nil)

	cases := []struct {
		name    string
		product Product
		wantErr error
	}{
		{
			name:    "negative price",
			product: Product{Name: "Bad", CategoryID: category.ID, Price: decimal.RequireFromString("-1.00")},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "discount above 100",
			product: Product{Name: "Bad", CategoryID: category.ID, Price: decimal.RequireFromString("1.00"), DiscountPercentage: 101},
			wantErr: ErrDiscountOutOfRange,
		},
		{
			name:    "negative discount",
			product: Product{Name: "Bad", CategoryID: category.ID, Price: decimal.RequireFromString("1.00"), DiscountPercentage: -1},
			wantErr: ErrDiscountOutOfRange,
		},
		{
			name:    "negative stock",
			product: Product{Name: "Bad", CategoryID: category.ID, Price: decimal.RequireFromString("1.00"), Stock: -5},
			wantErr: ErrNegativeStock,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := db.Create(&tc.product).Error
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)

			var count int64
			require.NoError(t, db.Model(&Product{}).Count(&count).Error)
			assert.Zero(t, count, "nothing may be written when validation fails")
		})
	}
}

func TestParseProductType(t *testing.T) {
	for _, valid := range []string{"new", "discount", "regular", "Regular"} {
		_, err := ParseProductType(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseProductType("vintage")
	assert.ErrorIs(t, err, ErrInvalidProductType)
}

func TestProductGalleryOrdering(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Shoes", nil)
	product := createTestProduct(t, db, "Runner", "10.00", 0, category.ID)

	for i, order := range []int{2, 0, 1} {
		img := &ProductImage{
			ProductID:    product.ID,
			Image:        fmt.Sprintf("products/gallery/%d.jpg", i),
			DisplayOrder: order,
		}
		require.NoError(t, db.Create(img).Error)
	}

	var images []ProductImage
	require.NoError(t, db.Where("product_id = ?", product.ID).
		Order("display_order, created_at").Find(&images).Error)

	orders := []int{images[0].DisplayOrder, images[1].DisplayOrder, images[2].DisplayOrder}
	assert.Equal(t, []int{0, 1, 2}, orders)
}

func TestDeletingProductRemovesGallery(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "Shoes", nil)
	product := createTestProduct(t, db, "Runner", "10.00", 0, category.ID)

	require.NoError(t, db.Create(&ProductImage{ProductID: product.ID, Image: "a.jpg"}).Error)
	require.NoError(t, db.Delete(product).Error)

	var count int64
	require.NoError(t, db.Model(&ProductImage{}).Count(&count).Error)
	assert.Zero(t, count)
}
