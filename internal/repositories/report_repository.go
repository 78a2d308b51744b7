package repositories

import "shop/internal/models"

// ReportRepository defines the read-only aggregate queries. Reports are
// point-in-time snapshots; the queries composing one report may each see a
// slightly different database state if writes are concurrent.
type ReportRepository interface {
	SalesSummary() (*models.SalesReport, error)
	TopProducts(limit int) ([]models.TopProductReport, error)
	CategorySales() ([]models.CategorySalesReport, error)
	TopCustomers(limit int) ([]models.CustomerReport, error)
}
