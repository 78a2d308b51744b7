package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"shop/internal/models"
	"shop/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo     repositories.CategoryRepository
	validate *validator.Validate
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory validates and creates a new category, returning the new ID.
func (s *CategoryService) CreateCategory(category *models.Category) (uint, error) {
	if err := s.validate.Struct(category); err != nil {
		return 0, fmt.Errorf("category validation failed: %w", err)
	}
	return s.repo.Create(category)
}

// UpdateCategory validates and saves an existing category. Returns false
// when the id does not exist.
func (s *CategoryService) UpdateCategory(category *models.Category) (bool, error) {
	if err := s.validate.Struct(category); err != nil {
		return false, fmt.Errorf("category validation failed: %w", err)
	}
	return s.repo.Update(category)
}

// DeleteCategory removes a category unless products still reference it.
func (s *CategoryService) DeleteCategory(id uint) (repositories.DeleteResult, error) {
	return s.repo.Delete(id)
}
