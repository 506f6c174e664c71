package repositories_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// setupTestDB opens a fresh in-memory SQLite database and migrates the full
// schema. Each test gets its own database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedProduct inserts a product with the given price and stock.
func seedProduct(t *testing.T, repo repositories.ProductRepository, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		Description: "test product",
		Price:       decimal.NewFromFloat(price),
		StockQty:    stock,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("failed to seed product %s: %v", name, err)
	}
	return product
}

// seedCart creates a cart for the user with the given product quantities.
func seedCart(t *testing.T, repo repositories.CartRepository, userID string, items ...models.CartItem) *models.Cart {
	t.Helper()
	cart := &models.Cart{UserID: userID}
	if err := repo.Create(cart); err != nil {
		t.Fatalf("failed to create cart: %v", err)
	}
	for _, item := range items {
		item.CartID = cart.ID
		if err := repo.CreateItem(&item); err != nil {
			t.Fatalf("failed to add cart item: %v", err)
		}
	}
	return cart
}
