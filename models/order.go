package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// Order is the snapshot of a purchase taken at checkout. TotalPrice is
// stored, not derived: it is computed once from the frozen item subtotals
// and never recomputed afterwards. Only Status changes after creation.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     string          `gorm:"not null;index" json:"user_id"`
	FullName   string          `gorm:"size:200;not null" json:"full_name"`
	Phone      string          `gorm:"size:20;not null" json:"phone"`
	Email      string          `gorm:"size:254;not null" json:"email"`
	Address    string          `gorm:"type:text;not null" json:"address"`
	City       string          `gorm:"size:100;not null" json:"city"`
	PostalCode string          `gorm:"size:20" json:"postal_code"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	Status     OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes      string          `gorm:"type:text" json:"notes"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // frozen at checkout
}

// Subtotal uses the checkout-time price, so later product price edits never
// change historical orders.
func (item *OrderItem) Subtotal() decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// ParseOrderStatus maps a request string onto the closed status set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}
