package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/models"
	"shop/internal/repositories"
)

func TestCategoryRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMCategoryRepository(db)

	description := "printed matter"
	id, err := repo.Create(&models.Category{Name: "Books", Description: &description, IsActive: true})
	require.NoError(t, err)
	assert.NotZero(t, id)

	fetched, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Books", fetched.Name)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, description, *fetched.Description)

	fetched.Name = "Literature"
	fetched.Description = nil
	ok, err := repo.Update(fetched)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Literature", updated.Name)
	assert.Nil(t, updated.Description)

	ok, err = repo.Update(&models.Category{ID: 999, Name: "Ghost"})
	require.NoError(t, err)
	assert.False(t, ok)

	categories, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestCategoryRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, category.ID, "Novel", "9.99", 5)

	// A category with products cannot be deleted; both rows survive.
	result, err := categoryRepo.Delete(category.ID)
	require.NoError(t, err)
	assert.Equal(t, repositories.DeleteConflict, result)
	_, err = categoryRepo.GetByID(category.ID)
	assert.NoError(t, err)
	_, err = productRepo.GetByID(product.ID)
	assert.NoError(t, err)

	result, err = productRepo.Delete(product.ID)
	require.NoError(t, err)
	assert.Equal(t, repositories.Deleted, result)

	result, err = categoryRepo.Delete(category.ID)
	require.NoError(t, err)
	assert.Equal(t, repositories.Deleted, result)

	result, err = categoryRepo.Delete(category.ID)
	require.NoError(t, err)
	assert.Equal(t, repositories.DeleteNotFound, result)
}

func TestProductRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	category := seedCategory(t, db, "Electronics")

	id, err := repo.Create(&models.Product{
		CategoryID:    category.ID,
		Name:          "Laptop",
		Price:         decimal.RequireFromString("899.90"),
		StockQuantity: 4,
		IsAvailable:   true,
	})
	require.NoError(t, err)

	fetched, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", fetched.Name)
	assert.Equal(t, "Electronics", fetched.CategoryName)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("899.90")))

	// Zero values overwrite on update.
	fetched.StockQuantity = 0
	fetched.IsAvailable = false
	ok, err := repo.Update(fetched)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := repo.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.StockQuantity)
	assert.False(t, updated.IsAvailable)

	products, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Electronics", products[0].CategoryName)
}

func TestProductRepository_Restock(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	category := seedCategory(t, db, "Electronics")
	product := seedProduct(t, db, category.ID, "Mouse", "3.25", 2)

	ok, err := repo.Restock(product.ID, 8)
	require.NoError(t, err)
	assert.True(t, ok)

	fetched, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, fetched.StockQuantity)

	ok, err = repo.Restock(999, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductRepository_Delete_Conflict(t *testing.T) {
	db := setupTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	user := seedUser(t, db, "Alice", "alice@example.com", 0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, category.ID, "Novel", "9.99", 10)

	orderID, err := orderRepo.Create(&models.Order{
		UserID: user.ID,
		Items:  []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// A product referenced by an order item stays.
	result, err := productRepo.Delete(product.ID)
	require.NoError(t, err)
	assert.Equal(t, repositories.DeleteConflict, result)

	result, err = orderRepo.Delete(orderID)
	require.NoError(t, err)
	assert.Equal(t, repositories.Deleted, result)

	result, err = productRepo.Delete(product.ID)
	require.NoError(t, err)
	assert.Equal(t, repositories.Deleted, result)
}
