package repositories

import (
	"github.com/shopspring/decimal"

	"shop/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) (uint, error)
	// Update returns false (without an error) when the id does not exist.
	Update(user *models.User) (bool, error)
	Delete(id uint) (DeleteResult, error)

	// TransferBonusPoints atomically moves points between two users.
	// The debit is conditional on sufficient balance at write time, so a
	// concurrent transfer can never overdraw the source.
	TransferBonusPoints(fromID, toID uint, amount decimal.Decimal) error
}
