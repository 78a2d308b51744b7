package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shop/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves all users from the database.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a single user by their ID from the database.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// Create inserts a new user and returns the database-assigned ID.
func (r *GORMUserRepository) Create(user *models.User) (uint, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := r.db.Create(user).Error; err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return user.ID, nil
}

// Update saves all fields of an existing user. Returns false when the id
// is absent; that is a soft failure, not an error.
func (r *GORMUserRepository) Update(user *models.User) (bool, error) {
	res := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"name":         user.Name,
		"email":        user.Email,
		"bonus_points": user.BonusPoints,
		"role":         user.Role,
		"is_active":    user.IsActive,
	})
	if res.Error != nil {
		return false, fmt.Errorf("failed to update user %d: %w", user.ID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a user unless any order still references them.
func (r *GORMUserRepository) Delete(id uint) (DeleteResult, error) {
	result := DeleteNotFound
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var orders int64
		if err := tx.Model(&models.Order{}).Where("user_id = ?", id).Count(&orders).Error; err != nil {
			return fmt.Errorf("failed to count orders for user %d: %w", id, err)
		}
		if orders > 0 {
			result = DeleteConflict
			return nil
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, res.Error)
		}
		if res.RowsAffected > 0 {
			result = Deleted
		}
		return nil
	})
	if err != nil {
		return DeleteNotFound, err
	}
	return result, nil
}

// TransferBonusPoints moves points from one user to another in a single
// transaction. The debit statement itself requires a sufficient balance
// and is re-validated by the affected-row count, so the check cannot race
// with a concurrent transfer regardless of isolation level.
func (r *GORMUserRepository) TransferBonusPoints(fromID, toID uint, amount decimal.Decimal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		debit := tx.Model(&models.User{}).
			Where("id = ? AND bonus_points >= ?", fromID, amount).
			UpdateColumn("bonus_points", gorm.Expr("bonus_points - ?", amount))
		if debit.Error != nil {
			return fmt.Errorf("failed to debit user %d: %w", fromID, debit.Error)
		}
		if debit.RowsAffected == 0 {
			// Missing source and insufficient balance are reported the
			// same way; the conditional update cannot tell them apart.
			return fmt.Errorf("user %d: %w", fromID, ErrInsufficientBalance)
		}

		credit := tx.Model(&models.User{}).
			Where("id = ?", toID).
			UpdateColumn("bonus_points", gorm.Expr("bonus_points + ?", amount))
		if credit.Error != nil {
			return fmt.Errorf("failed to credit user %d: %w", toID, credit.Error)
		}
		if credit.RowsAffected == 0 {
			return fmt.Errorf("recipient user %d: %w", toID, ErrNotFound)
		}
		return nil
	})
}
