package services_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) (uint, error) {
	args := m.Called(order)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uint, status models.OrderStatus) (bool, error) {
	args := m.Called(id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(id uint) (repositories.DeleteResult, error) {
	args := m.Called(id)
	return args.Get(0).(repositories.DeleteResult), args.Error(1)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	// An order without items never reaches the repository.
	_, err := service.PlaceOrder(1, nil, nil)
	assert.ErrorIs(t, err, repositories.ErrEmptyOrder)
	mockRepo.AssertNotCalled(t, "Create")

	// Non-positive quantities are rejected up front.
	_, err = service.PlaceOrder(1, []models.OrderItem{{ProductID: 2, Quantity: 0}}, nil)
	assert.ErrorIs(t, err, repositories.ErrInvalidAmount)
	mockRepo.AssertNotCalled(t, "Create")

	// A valid request is delegated; the repository fills in the ID, the
	// snapshot prices and the total.
	items := []models.OrderItem{{ProductID: 2, Quantity: 3}}
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*models.Order)
			order.ID = 42
			order.Status = models.StatusPending
			order.TotalAmount = decimal.NewFromInt(30)
		}).
		Return(uint(42), nil).Once()

	order, err := service.PlaceOrder(1, items, nil)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(30)))
	mockRepo.AssertExpectations(t)

	// Insufficient stock propagates unchanged.
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).
		Return(uint(0), fmt.Errorf("product 2: %w", repositories.ErrInsufficientStock)).Once()
	_, err = service.PlaceOrder(1, items, nil)
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	// An unknown status token is rejected before the repository is touched.
	err := service.UpdateOrderStatus(1, "Teleported")
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "UpdateStatus")

	// Status names are matched case-insensitively.
	mockRepo.On("UpdateStatus", uint(1), models.StatusShipped).Return(true, nil).Once()
	err = service.UpdateOrderStatus(1, "shipped")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// A missing order surfaces as ErrNotFound.
	mockRepo.On("UpdateStatus", uint(99), models.StatusCancelled).Return(false, nil).Once()
	err = service.UpdateOrderStatus(99, "Cancelled")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	expected := []models.Order{{ID: 2}, {ID: 1}}
	mockRepo.On("GetAll").Return(expected, nil).Once()
	orders, err := service.GetAllOrders()
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)

	mockRepo.On("GetByUserID", uint(7)).Return([]models.Order{{ID: 2}}, nil).Once()
	orders, err = service.GetOrdersByUserID(7)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	mockRepo.AssertExpectations(t)
}
