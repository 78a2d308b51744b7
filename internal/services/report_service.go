package services

import (
	"shop/internal/models"
	"shop/internal/repositories"
)

// DefaultReportLimit is used for top-N reports when no limit is given.
const DefaultReportLimit = 5

// ReportService exposes the read-only aggregate reports.
type ReportService struct {
	repo repositories.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(repo repositories.ReportRepository) *ReportService {
	return &ReportService{
		repo: repo,
	}
}

// GetSalesSummary computes the store-wide sales summary.
func (s *ReportService) GetSalesSummary() (*models.SalesReport, error) {
	return s.repo.SalesSummary()
}

// GetTopProducts returns the best-selling products by units sold.
func (s *ReportService) GetTopProducts(limit int) ([]models.TopProductReport, error) {
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	return s.repo.TopProducts(limit)
}

// GetCategorySales returns the per-category sales breakdown.
func (s *ReportService) GetCategorySales() ([]models.CategorySalesReport, error) {
	return s.repo.CategorySales()
}

// GetTopCustomers returns the highest-spending customers.
func (s *ReportService) GetTopCustomers(limit int) ([]models.CustomerReport, error) {
	if limit <= 0 {
		limit = DefaultReportLimit
	}
	return s.repo.TopCustomers(limit)
}
