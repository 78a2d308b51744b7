package handlers

import (
	"log"

	"shop/internal/models"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/user/:userId", h.HandleGetOrdersByUser)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleGetOrders retrieves all orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrdersByUser retrieves a user's orders, newest first.
func (h *OrderHandler) HandleGetOrdersByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	orders, err := h.service.GetOrdersByUserID(userID)
	if err != nil {
		log.Printf("Error getting orders for user %d: %v", userID, err)
		return respondError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order with its items.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	order, err := h.service.GetOrderByID(id)
	if err != nil {
		log.Printf("Error getting order %d: %v", id, err)
		return respondError(c, "Could not retrieve order", err)
	}
	return c.JSON(order)
}

// PlaceOrderRequest represents the request body for placing an order.
type PlaceOrderRequest struct {
	UserID uint    `json:"user_id"`
	Note   *string `json:"note,omitempty"`
	Items  []struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	} `json:"items"`
}

// HandlePlaceOrder places a new order.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "user_id is required",
		})
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.service.PlaceOrder(req.UserID, items, req.Note)
	if err != nil {
		log.Printf("Error placing order for user %d: %v", req.UserID, err)
		return respondError(c, "Could not place order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "status is required",
		})
	}

	if err := h.service.UpdateOrderStatus(id, updateData.Status); err != nil {
		log.Printf("Error updating status of order %d: %v", id, err)
		return respondError(c, "Could not update order status", err)
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated",
	})
}

// HandleDeleteOrder deletes an order together with its items.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.DeleteOrder(id)
	if err != nil {
		log.Printf("Error deleting order %d: %v", id, err)
		return respondError(c, "Could not delete order", err)
	}
	return respondDelete(c, "Order", id, result)
}
