package models

import "time"

// Category groups products. Deleting a category is rejected while any
// product still references it.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Description *string   `json:"description,omitempty" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
}
