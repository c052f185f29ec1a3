package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema and
// foreign keys enforced.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&User{},
		&Category{},
		&Tag{},
		&Product{},
		&ProductImage{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&AdminActionLog{},
	), "AutoMigrate failed")

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, id string) *User {
	t.Helper()
	user := &User{ID: id, Email: id + "@example.com", Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string, parentID *uint) *Category {
	t.Helper()
	category := &Category{Name: name, ParentID: parentID}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, name, price string, discount int, categoryID uint) *Product {
	t.Helper()
	product := &Product{
		Name:               name,
		CategoryID:         categoryID,
		Price:              decimal.RequireFromString(price),
		DiscountPercentage: discount,
		Stock:              10,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
