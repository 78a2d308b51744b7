package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"shop/internal/models"
	"shop/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates and creates a new product, returning the new ID.
func (s *ProductService) CreateProduct(product *models.Product) (uint, error) {
	if err := s.validateProduct(product); err != nil {
		return 0, err
	}
	return s.repo.Create(product)
}

// UpdateProduct validates and saves an existing product. Returns false
// when the id does not exist.
func (s *ProductService) UpdateProduct(product *models.Product) (bool, error) {
	if err := s.validateProduct(product); err != nil {
		return false, err
	}
	return s.repo.Update(product)
}

// DeleteProduct removes a product unless order items still reference it.
func (s *ProductService) DeleteProduct(id uint) (repositories.DeleteResult, error) {
	return s.repo.Delete(id)
}

// RestockProduct increments a product's stock by a positive quantity.
// Returns false when the id does not exist.
func (s *ProductService) RestockProduct(id uint, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, fmt.Errorf("restock quantity must be positive: %w", repositories.ErrInvalidAmount)
	}
	return s.repo.Restock(id, quantity)
}

func (s *ProductService) validateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("product validation failed: %w", err)
	}
	// Price is a decimal; the validator cannot express "greater than
	// zero" for it.
	if !product.Price.IsPositive() {
		return fmt.Errorf("price must be greater than 0: %w", repositories.ErrInvalidAmount)
	}
	return nil
}
