package handlers

import (
	"log"

	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles HTTP requests for the aggregate reports.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reportRoutes := router.Group("/reports")
	reportRoutes.Get("/sales", h.HandleSalesSummary)
	reportRoutes.Get("/top-products", h.HandleTopProducts)
	reportRoutes.Get("/category-sales", h.HandleCategorySales)
	reportRoutes.Get("/top-customers", h.HandleTopCustomers)
}

// HandleSalesSummary returns the store-wide sales summary.
func (h *ReportHandler) HandleSalesSummary(c *fiber.Ctx) error {
	report, err := h.service.GetSalesSummary()
	if err != nil {
		log.Printf("Error computing sales summary: %v", err)
		return respondError(c, "Could not compute sales summary", err)
	}
	return c.JSON(report)
}

// HandleTopProducts returns the best-selling products. The "limit" query
// parameter caps the number of rows.
func (h *ReportHandler) HandleTopProducts(c *fiber.Ctx) error {
	rows, err := h.service.GetTopProducts(c.QueryInt("limit"))
	if err != nil {
		log.Printf("Error computing top products: %v", err)
		return respondError(c, "Could not compute top products", err)
	}
	return c.JSON(rows)
}

// HandleCategorySales returns the per-category sales breakdown.
func (h *ReportHandler) HandleCategorySales(c *fiber.Ctx) error {
	rows, err := h.service.GetCategorySales()
	if err != nil {
		log.Printf("Error computing category sales: %v", err)
		return respondError(c, "Could not compute category sales", err)
	}
	return c.JSON(rows)
}

// HandleTopCustomers returns the highest-spending customers. The "limit"
// query parameter caps the number of rows.
func (h *ReportHandler) HandleTopCustomers(c *fiber.Ctx) error {
	rows, err := h.service.GetTopCustomers(c.QueryInt("limit"))
	if err != nil {
		log.Printf("Error computing top customers: %v", err)
		return respondError(c, "Could not compute top customers", err)
	}
	return c.JSON(rows)
}
