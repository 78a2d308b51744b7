package handlers

import (
	"log"

	"shop/internal/models"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return respondError(c, "Could not retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		log.Printf("Error getting category %d: %v", id, err)
		return respondError(c, "Could not retrieve category", err)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	id, err := h.service.CreateCategory(&category)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, "Could not create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       id,
		"category": category,
	})
}

// HandleUpdateCategory updates an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	category.ID = id

	updated, err := h.service.UpdateCategory(&category)
	if err != nil {
		log.Printf("Error updating category %d: %v", id, err)
		return respondError(c, "Could not update category", err)
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Category not found",
		})
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category unless products still reference it.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.DeleteCategory(id)
	if err != nil {
		log.Printf("Error deleting category %d: %v", id, err)
		return respondError(c, "Could not delete category", err)
	}
	return respondDelete(c, "Category", id, result)
}
