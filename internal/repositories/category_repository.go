package repositories

import "shop/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) (uint, error)
	// Update returns false (without an error) when the id does not exist.
	Update(category *models.Category) (bool, error)
	// Delete reports DeleteConflict while any product references the category.
	Delete(id uint) (DeleteResult, error)
}
