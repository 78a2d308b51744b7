package handlers

import (
	"log"

	"shop/internal/models"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// UserHandler handles HTTP requests for users, including bonus point
// transfers.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
	userRoutes.Post("/transfer", h.HandleTransferBonusPoints)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return respondError(c, "Could not retrieve users", err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user, err := h.service.GetUserByID(id)
	if err != nil {
		log.Printf("Error getting user %d: %v", id, err)
		return respondError(c, "Could not retrieve user", err)
	}
	return c.JSON(user)
}

// HandleCreateUser creates a new user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	id, err := h.service.CreateUser(&user)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return respondError(c, "Could not create user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":   id,
		"user": user,
	})
}

// HandleUpdateUser updates an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	user.ID = id

	updated, err := h.service.UpdateUser(&user)
	if err != nil {
		log.Printf("Error updating user %d: %v", id, err)
		return respondError(c, "Could not update user", err)
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user unless orders still reference them.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.DeleteUser(id)
	if err != nil {
		log.Printf("Error deleting user %d: %v", id, err)
		return respondError(c, "Could not delete user", err)
	}
	return respondDelete(c, "User", id, result)
}

// TransferRequest represents the request body for a bonus point transfer.
type TransferRequest struct {
	FromUserID uint            `json:"from_user_id"`
	ToUserID   uint            `json:"to_user_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// HandleTransferBonusPoints moves bonus points between two users.
func (h *UserHandler) HandleTransferBonusPoints(c *fiber.Ctx) error {
	var req TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.FromUserID == 0 || req.ToUserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "from_user_id and to_user_id are required",
		})
	}

	if err := h.service.TransferBonusPoints(req.FromUserID, req.ToUserID, req.Amount); err != nil {
		log.Printf("Error transferring %s points from user %d to user %d: %v",
			req.Amount, req.FromUserID, req.ToUserID, err)
		return respondError(c, "Transfer failed", err)
	}

	return c.JSON(fiber.Map{
		"message": "Transfer completed",
	})
}
