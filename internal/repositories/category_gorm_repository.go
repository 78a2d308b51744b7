package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shop/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories from the database.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID from the database.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// Create inserts a new category and returns the database-assigned ID.
func (r *GORMCategoryRepository) Create(category *models.Category) (uint, error) {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	if err := r.db.Create(category).Error; err != nil {
		return 0, fmt.Errorf("failed to create category: %w", err)
	}
	return category.ID, nil
}

// Update saves an existing category. Returns false when the id is absent.
func (r *GORMCategoryRepository) Update(category *models.Category) (bool, error) {
	res := r.db.Model(&models.Category{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
		"is_active":   category.IsActive,
	})
	if res.Error != nil {
		return false, fmt.Errorf("failed to update category %d: %w", category.ID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a category unless any product still references it.
func (r *GORMCategoryRepository) Delete(id uint) (DeleteResult, error) {
	result := DeleteNotFound
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var products int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&products).Error; err != nil {
			return fmt.Errorf("failed to count products for category %d: %w", id, err)
		}
		if products > 0 {
			result = DeleteConflict
			return nil
		}

		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, res.Error)
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
