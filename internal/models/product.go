package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the store. Stock is only ever changed
// by order placement (decrement) and explicit restock (increment).
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	CategoryID    uint            `json:"category_id" gorm:"not null;index" validate:"required"`
	Name          string          `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Description   *string         `json:"description,omitempty" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null;default:0" validate:"gte=0"`
	IsAvailable   bool            `json:"is_available" gorm:"not null;default:true"`
	CreatedAt     time.Time       `json:"created_at"`

	// CategoryName is resolved by a join for display; not a column.
	CategoryName string `json:"category_name,omitempty" gorm:"->;-:migration"`
}
