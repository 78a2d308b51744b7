package repositories

import "shop/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) (uint, error)
	// Update returns false (without an error) when the id does not exist.
	Update(product *models.Product) (bool, error)
	// Delete reports DeleteConflict while any order item references the product.
	Delete(id uint) (DeleteResult, error)

	// Restock increments a product's stock. Returns false when the id
	// does not exist.
	Restock(id uint, quantity int) (bool, error)
}
