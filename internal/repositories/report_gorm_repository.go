package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"shop/internal/models"
)

// GORMReportRepository is a GORM implementation of ReportRepository.
// The reports run raw aggregate SQL; nothing is cached or maintained
// incrementally.
type GORMReportRepository struct {
	db *gorm.DB
}

// NewGORMReportRepository creates a new instance of GORMReportRepository.
func NewGORMReportRepository(db *gorm.DB) *GORMReportRepository {
	return &GORMReportRepository{
		db: db,
	}
}

// SalesSummary computes the store-wide totals across orders, order items
// and users.
func (r *GORMReportRepository) SalesSummary() (*models.SalesReport, error) {
	var report models.SalesReport
	err := r.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders) AS total_orders,
			(SELECT COUNT(DISTINCT user_id) FROM orders) AS total_customers,
			(SELECT COALESCE(SUM(quantity), 0) FROM order_items) AS total_products_sold,
			(SELECT COALESCE(SUM(total_amount), 0) FROM orders) AS total_revenue,
			(SELECT COALESCE(AVG(total_amount), 0) FROM orders) AS average_order_value`).
		Scan(&report).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute sales summary: %w", err)
	}
	report.ReportDate = time.Now()
	return &report, nil
}

// TopProducts returns the best-selling products by units sold, with their
// category names. Products that never sold appear with zero counts.
func (r *GORMReportRepository) TopProducts(limit int) ([]models.TopProductReport, error) {
	var rows []models.TopProductReport
	err := r.db.Raw(`
		SELECT
			p.id AS product_id,
			p.name AS product_name,
			c.name AS category_name,
			COALESCE(SUM(oi.quantity), 0) AS quantity_sold,
			COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_revenue
		FROM products p
		JOIN categories c ON p.category_id = c.id
		LEFT JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id, p.name, c.name
		ORDER BY quantity_sold DESC
		LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute top products: %w", err)
	}
	return rows, nil
}

// CategorySales returns product counts, units sold and revenue per
// category, computed on demand.
func (r *GORMReportRepository) CategorySales() ([]models.CategorySalesReport, error) {
	var rows []models.CategorySalesReport
	err := r.db.Raw(`
		SELECT
			c.id AS category_id,
			c.name AS category_name,
			COUNT(DISTINCT p.id) AS product_count,
			COALESCE(SUM(oi.quantity), 0) AS total_sold,
			COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_revenue
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		LEFT JOIN order_items oi ON oi.product_id = p.id
		GROUP BY c.id, c.name
		ORDER BY total_revenue DESC`).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute category sales: %w", err)
	}
	return rows, nil
}

// TopCustomers returns the highest-spending users with their order counts.
func (r *GORMReportRepository) TopCustomers(limit int) ([]models.CustomerReport, error) {
	var rows []models.CustomerReport
	err := r.db.Raw(`
		SELECT
			u.id AS user_id,
			u.name AS customer_name,
			u.email,
			u.bonus_points,
			COUNT(o.id) AS order_count,
			COALESCE(SUM(o.total_amount), 0) AS total_spent
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id
		GROUP BY u.id, u.name, u.email, u.bonus_points
		ORDER BY total_spent DESC
		LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute top customers: %w", err)
	}
	return rows, nil
}
