package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/urolovforever/eccomerce/audit"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// -------- Core Logic --------

// Checkout turns the user's cart into an order. Each line's price is frozen
// from the product's current discounted price, stock is decremented with an
// atomic conditional update, and the stored order total is computed once
// from the frozen subtotals. All of it commits in one transaction.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
				return err
			}
			if len(cart.Items) == 0 {
				return ErrCartEmpty
			}

			total := decimal.Zero
			var orderItems []models.OrderItem

			for _, item := range cart.Items {
				// Atomic conditional decrement: two simultaneous checkouts
				// cannot drive stock below zero.
				res := tx.Model(&models.Product{}).
					Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return ErrInsufficientStock
				}

				// Freeze the price as of now; later product edits must not
				// touch this order.
				frozenPrice := item.Product.DiscountedPrice()
				total = total.Add(frozenPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))

				orderItems = append(orderItems, models.OrderItem{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Price:     frozenPrice,
				})
			}

			order = models.Order{
				UserID:     userID,
				FullName:   req.FullName,
				Phone:      req.Phone,
				Email:      req.Email,
				Address:    req.Address,
				City:       req.City,
				PostalCode: req.PostalCode,
				TotalPrice: total,
				Status:     models.OrderStatusPending,
				Notes:      req.Notes,
				Items:      orderItems,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			// Checkout empties the cart
			return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
		})

		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastOrderEvent("order_created", order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var orders []models.Order
		if err := db.Preload("Items").Where("user_id = ?", userID).
			Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:id
func GetUserOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var order models.Order
		if err := db.Preload("Items.Product").
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Order{}).Preload("Items").Order("created_at DESC")
		if statusStr := c.Query("status"); statusStr != "" {
			status, err := models.ParseOrderStatus(statusStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
				return
			}
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items.Product").First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus is the only mutation an order accepts after creation.
// PUT /admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		oldStatus := order.Status
		if err := db.Model(&order).UpdateColumn("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		order.Status = status

		changes := map[string]interface{}{}
		audit.Diff(changes, "status", oldStatus, status)
		audit.Record(db, c, models.ActionUpdate, models.AuditedOrder, order.ID, order.FullName, changes)

		broadcastOrderEvent("order_status_changed", order)

		c.JSON(http.StatusOK, order)
	}
}
