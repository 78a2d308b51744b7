package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) (uint, error) {
	args := m.Called(category)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *models.Category) (bool, error) {
	args := m.Called(category)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Delete(id uint) (repositories.DeleteResult, error) {
	args := m.Called(id)
	return args.Get(0).(repositories.DeleteResult), args.Error(1)
}

func newImportService(userRepo *MockUserRepository, productRepo *MockProductRepository, categoryRepo *MockCategoryRepository) *services.ImportService {
	return services.NewImportService(userRepo, productRepo, categoryRepo)
}

func TestImportService_ImportUsers(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newImportService(userRepo, new(MockProductRepository), new(MockCategoryRepository))

	csvData := strings.Join([]string{
		"Name,Email,BonusPoints,Role",
		"Alice,alice@example.com,100,customer",
		"Bob,bob-at-nowhere,50,Customer",
		"Carol,carol@example.com,25,Manager",
		`"Dvorak, Jan",jan@example.com,0,admin`,
		"Eve,eve@example.com,abc,Customer",
		"Frank,frank@example.com,10,Wizard",
	}, "\n")

	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(uint(1), nil).Times(3)

	result, err := service.ImportUsers(strings.NewReader(csvData))
	assert.NoError(t, err)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 3, result.FailedCount)
	assert.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "line 3")
	assert.Contains(t, result.Errors[0], "invalid email")
	assert.Contains(t, result.Errors[1], "invalid bonus points")
	assert.Contains(t, result.Errors[2], "unknown role")
	userRepo.AssertExpectations(t)
}

func TestImportService_ImportUsers_EmptyFile(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newImportService(userRepo, new(MockProductRepository), new(MockCategoryRepository))

	result, err := service.ImportUsers(strings.NewReader("Name,Email,BonusPoints,Role\n"))
	assert.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "no data rows")
	userRepo.AssertNotCalled(t, "Create")
}

func TestImportService_ImportProducts(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	service := newImportService(new(MockUserRepository), productRepo, categoryRepo)

	categoryRepo.On("GetAll").Return([]models.Category{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Books"},
	}, nil).Once()

	csvData := strings.Join([]string{
		"Name,Category,Description,Price,Stock",
		"Laptop,electronics,High performance laptop,1200.00,10",
		"Novel,BOOKS,,15.50,30",
		"Gadget,Toys,Unknown category,9.99,5",
		"Freebie,Books,Zero priced,0,5",
		"Cursed,Books,Bad stock,5.00,-1",
	}, "\n")

	productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(uint(1), nil).Times(2)

	result, err := service.ImportProducts(strings.NewReader(csvData))
	assert.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 3, result.FailedCount)
	assert.Contains(t, result.Errors[0], `category "Toys" not found`)
	assert.Contains(t, result.Errors[1], "price must be greater than 0")
	assert.Contains(t, result.Errors[2], "invalid stock quantity")
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}
