package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Tag{}, &models.Product{},
		&models.ProductImage{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.AdminActionLog{},
	))
	return db
}

// asUser stands in for the JWT middleware in tests.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newCartRouter(db *gorm.DB, userID string) *gin.Engine {
	r := gin.New()
	group := r.Group("/user/cart", asUser(userID))
	group.GET("/", GetUserCart(db))
	group.POST("/", UpdateCartItem(db))
	group.DELETE("/:product_id", DeleteCartItem(db))
	group.DELETE("/", ClearUserCart(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) *models.Product {
	t.Helper()
	category := &models.Category{Name: name + " category"}
	require.NoError(t, db.Create(category).Error)
	product := &models.Product{
		Name:       name,
		CategoryID: category.ID,
		Price:      decimal.RequireFromString(price),
		Stock:      10,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemAndTotals(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: "alice", Email: "alice@example.com"}).Error)
	productA := seedProduct(t, db, "A", "10.00")
	productB := seedProduct(t, db, "B", "5.50")
	r := newCartRouter(db, "alice")

	w := doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": productA.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": productB.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/user/cart/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items      []models.CartItem `json:"items"`
		TotalPrice decimal.Decimal   `json:"total_price"`
		TotalItems int               `json:"total_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("25.50")), "got %s", resp.TotalPrice)
	assert.Equal(t, 3, resp.TotalItems)
}

func TestAddingSameProductUpdatesQuantity(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: "alice", Email: "alice@example.com"}).Error)
	product := seedProduct(t, db, "A", "10.00")
	r := newCartRouter(db, "alice")

	w := doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": product.ID, "quantity": 4})
	require.Equal(t, http.StatusOK, w.Code, "second add must update the line, not create a duplicate")

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, 4, item.Quantity)
}

func TestAddUnknownProductRejected(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: "alice", Email: "alice@example.com"}).Error)
	r := newCartRouter(db, "alice")

	w := doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": 999, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCartItem(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: "alice", Email: "alice@example.com"}).Error)
	product := seedProduct(t, db, "A", "10.00")
	r := newCartRouter(db, "alice")

	w := doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/user/cart/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/user/cart/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "deleting an absent line reports not found")
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: "alice", Email: "alice@example.com"}).Error)
	productA := seedProduct(t, db, "A", "10.00")
	productB := seedProduct(t, db, "B", "5.50")
	r := newCartRouter(db, "alice")

	doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": productA.ID, "quantity": 1})
	doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": productB.ID, "quantity": 1})

	w := doJSON(t, r, http.MethodDelete, "/user/cart/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}
