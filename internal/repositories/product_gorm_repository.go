package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shop/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products with their category names resolved.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID with its category name resolved.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.id = ?", id).
		Take(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product and returns the database-assigned ID.
func (r *GORMProductRepository) Create(product *models.Product) (uint, error) {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if err := r.db.Create(product).Error; err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return product.ID, nil
}

// Update saves all fields of an existing product, including zero values.
// Returns false when the id is absent.
func (r *GORMProductRepository) Update(product *models.Product) (bool, error) {
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"category_id":    product.CategoryID,
		"name":           product.Name,
		"description":    product.Description,
		"price":          product.Price,
		"stock_quantity": product.StockQuantity,
		"is_available":   product.IsAvailable,
	})
	if res.Error != nil {
		return false, fmt.Errorf("failed to update product %d: %w", product.ID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a product unless any order item still references it.
func (r *GORMProductRepository) Delete(id uint) (DeleteResult, error) {
	result := DeleteNotFound
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var items int64
		if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&items).Error; err != nil {
			return fmt.Errorf("failed to count order items for product %d: %w", id, err)
		}
		if items > 0 {
			result = DeleteConflict
			return nil
		}

		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
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

// Restock increments a product's stock by the given quantity.
func (r *GORMProductRepository) Restock(id uint, quantity int) (bool, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if res.Error != nil {
		return false, fmt.Errorf("failed to restock product %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
