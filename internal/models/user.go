package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UserRole distinguishes what a user is allowed to do.
type UserRole string

const (
	RoleCustomer UserRole = "Customer"
	RoleAdmin    UserRole = "Admin"
	RoleManager  UserRole = "Manager"
)

// ParseUserRole matches a role name case-insensitively (CSV imports are
// not consistent about casing).
func ParseUserRole(s string) (UserRole, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return RoleCustomer, true
	case "admin":
		return RoleAdmin, true
	case "manager":
		return RoleManager, true
	}
	return "", false
}

// User represents a customer or staff member of the store.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=1,max=100"`
	Email string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	// PasswordHash is empty for CSV-imported users; they cannot log in
	// until an admin sets a password.
	PasswordHash string          `json:"-" gorm:"type:varchar(255)"`
	BonusPoints  decimal.Decimal `json:"bonus_points" gorm:"type:decimal(10,2);not null;default:0"`
	Role         UserRole        `json:"role" gorm:"type:varchar(20);not null;default:'Customer'" validate:"required,oneof=Customer Admin Manager"`
	IsActive     bool            `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time       `json:"created_at"`
}
