package repositories

import "shop/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// GetAll returns orders newest-first by creation time.
	GetAll() ([]models.Order, error)
	// GetByID returns the order with its items, product names resolved.
	GetByID(id uint) (*models.Order, error)
	// GetByUserID returns a user's orders newest-first.
	GetByUserID(userID uint) ([]models.Order, error)

	// Create places an order: it snapshots unit prices, computes the
	// total, inserts the order and its items, and decrements stock, all
	// in one transaction. Any failure rolls back every write.
	Create(order *models.Order) (uint, error)

	// UpdateStatus returns false (without an error) when the id does not exist.
	UpdateStatus(id uint, status models.OrderStatus) (bool, error)

	// Delete removes an order and cascades to its items.
	Delete(id uint) (DeleteResult, error)
}
