package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReport is the store-wide sales summary.
type SalesReport struct {
	TotalOrders       int             `json:"total_orders"`
	TotalCustomers    int             `json:"total_customers"`
	TotalProductsSold int             `json:"total_products_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	ReportDate        time.Time       `json:"report_date"`
}

// TopProductReport is one row of the best-selling products report.
type TopProductReport struct {
	ProductID    uint            `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CategorySalesReport is one row of the per-category sales breakdown.
type CategorySalesReport struct {
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	ProductCount int             `json:"product_count"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CustomerReport is one row of the top-customers report.
type CustomerReport struct {
	UserID       uint            `json:"user_id"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	BonusPoints  decimal.Decimal `json:"bonus_points"`
	OrderCount   int             `json:"order_count"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}
