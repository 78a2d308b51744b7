package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. Any status may
// transition to any other; only the token itself is validated.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus matches a status name case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, status := range []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		if strings.EqualFold(s, string(status)) {
			return status, true
		}
	}
	return "", false
}

// Order represents a customer order. An order exclusively owns its items:
// deleting the order deletes them too.
type Order struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`
	// TotalAmount is fixed at creation time as the sum of the items'
	// totals; it is never recomputed from live product prices.
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Status      OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`
	Note        *string         `json:"note,omitempty" gorm:"type:varchar(500)"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// CustomerName is resolved by a join for display; not a column.
	CustomerName string `json:"customer_name,omitempty" gorm:"->;-:migration"`
}

// OrderItem is a single line of an order. UnitPrice is the product price
// snapshotted when the order was placed, independent of later changes.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null;index"`
	ProductID uint            `json:"product_id" gorm:"not null;index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`

	// ProductName is resolved by a join for display; not a column.
	ProductName string `json:"product_name,omitempty" gorm:"->;-:migration"`
}

// TotalPrice is the derived line total: quantity times the snapshot price.
func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
