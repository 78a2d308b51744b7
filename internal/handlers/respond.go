package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"shop/internal/repositories"
)

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}

// statusForError maps the repository failure taxonomy to HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, repositories.ErrProductNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrInsufficientStock),
		errors.Is(err, repositories.ErrInsufficientBalance),
		errors.Is(err, repositories.ErrDuplicateEmail):
		return fiber.StatusConflict
	case errors.Is(err, repositories.ErrEmptyOrder),
		errors.Is(err, repositories.ErrInvalidAmount),
		errors.Is(err, repositories.ErrProductUnavailable):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// respondError renders a repository/service error with the right status.
func respondError(c *fiber.Ctx, message string, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// respondDelete renders a tagged delete outcome.
func respondDelete(c *fiber.Ctx, entity string, id uint, result repositories.DeleteResult) error {
	switch result {
	case repositories.Deleted:
		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("%s %d deleted", entity, id),
		})
	case repositories.DeleteConflict:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": fmt.Sprintf("%s %d cannot be deleted: %s", entity, id, result),
		})
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("%s %d not found", entity, id),
		})
	}
}
