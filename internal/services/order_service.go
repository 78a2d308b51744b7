package services

import (
	"fmt"
	"log"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. The RabbitMQ client may be
// nil; events are then skipped.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order with its items.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByUserID retrieves a user's orders, newest first.
func (s *OrderService) GetOrdersByUserID(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// PlaceOrder validates the request and delegates the transactional work
// to the repository. On success the placed order (with its database ID,
// snapshot prices and computed total) is returned and an order.created
// event is published.
func (s *OrderService) PlaceOrder(userID uint, items []models.OrderItem, note *string) (*models.Order, error) {
	if len(items) == 0 {
		return nil, repositories.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("product %d: quantity must be positive: %w", item.ProductID, repositories.ErrInvalidAmount)
		}
	}

	order := &models.Order{
		UserID: userID,
		Items:  items,
		Note:   note,
	}
	orderID, err := s.orderRepo.Create(order)
	if err != nil {
		return nil, err
	}

	s.publish(rabbitmq.EventOrderCreated, map[string]interface{}{
		"order_id": orderID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})

	return order, nil
}

// UpdateOrderStatus updates the status of an existing order. The status
// token is validated, but any transition between valid statuses is
// allowed.
func (s *OrderService) UpdateOrderStatus(id uint, status string) error {
	parsed, ok := models.ParseOrderStatus(status)
	if !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	updated, err := s.orderRepo.UpdateStatus(id, parsed)
	if err != nil {
		return fmt.Errorf("failed to update order status for order %d: %w", id, err)
	}
	if !updated {
		return fmt.Errorf("order %d: %w", id, repositories.ErrNotFound)
	}

	s.publish(rabbitmq.EventOrderStatusUpdated, map[string]interface{}{
		"order_id": id,
		"status":   parsed,
	})

	return nil
}

// DeleteOrder removes an order together with its items.
func (s *OrderService) DeleteOrder(id uint) (repositories.DeleteResult, error) {
	return s.orderRepo.Delete(id)
}

// publish sends an event if a RabbitMQ client is configured. Publish
// failures are logged, never propagated; events are advisory.
func (s *OrderService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
