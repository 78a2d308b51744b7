package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shop/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders newest-first with customer names resolved.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Model(&models.Order{}).
		Select("orders.*, users.name AS customer_name").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves an order with its items; product names are resolved
// for display.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Model(&models.Order{}).
		Select("orders.*, users.name AS customer_name").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.id = ?", id).
		Take(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}

	err = r.db.Model(&models.OrderItem{}).
		Select("order_items.*, products.name AS product_name").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", id).
		Find(&order.Items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get items for order %d: %w", id, err)
	}

	return &order, nil
}

// GetByUserID retrieves a user's orders newest-first.
func (r *GORMOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Model(&models.Order{}).
		Select("orders.*, users.name AS customer_name").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// Create places the order in a single transaction: every requested product
// is loaded and checked, unit prices are snapshotted, the order and items
// are inserted, and stock is decremented. The decrement is conditional on
// sufficient remaining stock at write time and re-validated by the
// affected-row count, so two concurrent orders cannot both take the last
// units. Any failure rolls back all writes; a partial order is never
// observable.
func (r *GORMOrderRepository) Create(order *models.Order) (uint, error) {
	if len(order.Items) == 0 {
		return 0, ErrEmptyOrder
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		for i := range order.Items {
			item := &order.Items[i]

			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d: %w", item.ProductID, ErrProductNotFound)
				}
				return fmt.Errorf("failed to load product %d: %w", item.ProductID, err)
			}
			if !product.IsAvailable {
				return fmt.Errorf("product %q: %w", product.Name, ErrProductUnavailable)
			}
			if item.Quantity > product.StockQuantity {
				return fmt.Errorf("product %q (requested %d, available %d): %w",
					product.Name, item.Quantity, product.StockQuantity, ErrInsufficientStock)
			}

			// Snapshot the price; later product price changes must not
			// affect this order.
			item.UnitPrice = product.Price
			total = total.Add(item.TotalPrice())
		}

		order.TotalAmount = total
		order.Status = models.StatusPending
		if order.CreatedAt.IsZero() {
			order.CreatedAt = time.Now()
		}

		// Creating the order also inserts its items via the association.
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range order.Items {
			item := order.Items[i]
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				// Stock changed between the read above and this write.
				return fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

// UpdateStatus sets the order status. Any status may transition to any other.
func (r *GORMOrderRepository) UpdateStatus(id uint, status models.OrderStatus) (bool, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update status for order %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes an order and its items in one transaction. Orders own
// their items, so this is a cascade rather than a conflict.
func (r *GORMOrderRepository) Delete(id uint) (DeleteResult, error) {
	result := DeleteNotFound
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items for order %d: %w", id, err)
		}

		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete order %d: %w", id, res.Error)
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
