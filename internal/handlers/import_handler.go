package handlers

import (
	"io"
	"log"

	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ImportHandler handles CSV bulk imports. Files are uploaded as the
// "file" field of a multipart form.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{
		service: service,
	}
}

// RegisterRoutes registers the import routes with the Fiber app.
func (h *ImportHandler) RegisterRoutes(router fiber.Router) {
	importRoutes := router.Group("/import")
	importRoutes.Post("/users", h.HandleImportUsers)
	importRoutes.Post("/products", h.HandleImportProducts)
}

// HandleImportUsers bulk-imports users from an uploaded CSV file.
func (h *ImportHandler) HandleImportUsers(c *fiber.Ctx) error {
	return h.runImport(c, h.service.ImportUsers)
}

// HandleImportProducts bulk-imports products from an uploaded CSV file.
func (h *ImportHandler) HandleImportProducts(c *fiber.Ctx) error {
	return h.runImport(c, h.service.ImportProducts)
}

func (h *ImportHandler) runImport(c *fiber.Ctx, importFn func(io.Reader) (*services.ImportResult, error)) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A CSV file is required in the 'file' form field",
			"error":   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read uploaded file",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	result, err := importFn(file)
	if err != nil {
		log.Printf("Error importing %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Import failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(result)
}
