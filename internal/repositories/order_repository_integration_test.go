package repositories_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/models"
	"shop/internal/repositories"
)

func TestOrderRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := repositories.NewGORMOrderRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	user := seedUser(t, db, "Alice", "alice@example.com", 0)
	category := seedCategory(t, db, "Electronics")
	laptop := seedProduct(t, db, category.ID, "Laptop", "10.50", 5)
	mouse := seedProduct(t, db, category.ID, "Mouse", "3.25", 10)

	note := "leave at the door"
	order := &models.Order{
		UserID: user.ID,
		Note:   &note,
		Items: []models.OrderItem{
			{ProductID: laptop.ID, Quantity: 2},
			{ProductID: mouse.ID, Quantity: 4},
		},
	}
	orderID, err := orderRepo.Create(order)
	require.NoError(t, err)
	assert.NotZero(t, orderID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("34.00")),
		"total = %s", order.TotalAmount)

	// Stock is decremented per line.
	p, err := productRepo.GetByID(laptop.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.StockQuantity)
	p, err = productRepo.GetByID(mouse.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, p.StockQuantity)

	fetched, err := orderRepo.GetByID(orderID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", fetched.CustomerName)
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "Laptop", fetched.Items[0].ProductName)
	assert.True(t, fetched.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.50")))

	// Later price changes leave the snapshot untouched.
	laptop.Price = decimal.RequireFromString("99.99")
	ok, err := productRepo.Update(laptop)
	require.NoError(t, err)
	require.True(t, ok)

	fetched, err = orderRepo.GetByID(orderID)
	require.NoError(t, err)
	assert.True(t, fetched.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, fetched.TotalAmount.Equal(decimal.RequireFromString("34.00")))
}

func TestOrderRepository_Create_Failures(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := repositories.NewGORMOrderRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	user := seedUser(t, db, "Alice", "alice@example.com", 0)
	category := seedCategory(t, db, "Electronics")
	scarce := seedProduct(t, db, category.ID, "Scarce", "5.00", 3)
	hidden := seedProduct(t, db, category.ID, "Hidden", "5.00", 10)
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", hidden.ID).
		Update("is_available", false).Error)

	_, err := orderRepo.Create(&models.Order{UserID: user.ID})
	assert.ErrorIs(t, err, repositories.ErrEmptyOrder)

	_, err = orderRepo.Create(&models.Order{
		UserID: user.ID,
		Items:  []models.OrderItem{{ProductID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	_, err = orderRepo.Create(&models.Order{
		UserID: user.ID,
		Items:  []models.OrderItem{{ProductID: hidden.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, repositories.ErrProductUnavailable)

	// One uncovered line sinks the whole order; nothing is written.
	_, err = orderRepo.Create(&models.Order{
		UserID: user.ID,
		Items: []models.OrderItem{
			{ProductID: scarce.ID, Quantity: 2},
			{ProductID: scarce.ID, Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)

	p, err := productRepo.GetByID(scarce.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, p.StockQuantity)
}

func TestOrderRepository_GetAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := repositories.NewGORMOrderRepository(db)

	alice := seedUser(t, db, "Alice", "alice@example.com", 0)
	bob := seedUser(t, db, "Bob", "bob@example.com", 0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, category.ID, "Novel", "9.99", 100)

	base := time.Now().Add(-time.Hour)
	var ids []uint
	for i, userID := range []uint{alice.ID, bob.ID, alice.ID} {
		order := &models.Order{
			UserID:    userID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Items:     []models.OrderItem{{ProductID: product.ID, Quantity: 1}},
		}
		id, err := orderRepo.Create(order)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	all, err := orderRepo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{ids[2], ids[1], ids[0]}, []uint{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, "Alice", all[0].CustomerName)

	mine, err := orderRepo.GetByUserID(alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, []uint{ids[2], ids[0]}, []uint{mine[0].ID, mine[1].ID})
}

func TestOrderRepository_UpdateStatusAndDelete(t *testing.T) {
	db := setupTestDB(t)
	orderRepo := repositories.NewGORMOrderRepository(db)

	user := seedUser(t, db, "Alice", "alice@example.com", 0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, category.ID, "Novel", "9.99", 10)

	orderID, err := orderRepo.Create(&models.Order{
		UserID: user.ID,
		Items:  []models.OrderItem{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	ok, err := orderRepo.UpdateStatus(orderID, models.StatusShipped)
	require.NoError(t, err)
	assert.True(t, ok)

	fetched, err := orderRepo.GetByID(orderID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, fetched.Status)

	ok, err = orderRepo.UpdateStatus(999, models.StatusCancelled)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting the order takes its items with it.
	result, err := orderRepo.Delete(orderID)
	require.NoError(t, err)
	assert.Equal(t, repositories.Deleted, result)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	result, err = orderRepo.Delete(orderID)
	require.NoError(t, err)
	assert.Equal(t, repositories.DeleteNotFound, result)

	_, err = orderRepo.GetByID(orderID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
