package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

func TestCartRepository_GetLinesJoinsProducts(t *testing.T) {
	db := setupTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)

	productA := seedProduct(t, productRepo, "ProductA", 10.00, 5)
	productB := seedProduct(t, productRepo, "ProductB", 5.00, 3)
	seedCart(t, cartRepo, "user-1",
		models.CartItem{ProductID: productA.ID, Quantity: 2},
		models.CartItem{ProductID: productB.ID, Quantity: 1},
	)

	lines, err := cartRepo.GetLines("user-1")
	assert.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, "ProductA", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromFloat(10.00)))
	assert.Equal(t, "ProductB", lines[1].Name)
}

func TestCartRepository_GetCheckoutLinesCarriesLiveStock(t *testing.T) {
	db := setupTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)

	product := seedProduct(t, productRepo, "ProductA", 10.00, 5)
	seedCart(t, cartRepo, "user-1", models.CartItem{ProductID: product.ID, Quantity: 2})

	// Stock moves after the item went into the cart; the checkout view must
	// see the live figure, not the add-time one
	assert.NoError(t, productRepo.DecrementStock(product.ID, 4))

	lines, err := cartRepo.GetCheckoutLines("user-1")
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].StockQty)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartRepository_DeleteByUserIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)

	product := seedProduct(t, productRepo, "ProductA", 10.00, 5)
	cart := seedCart(t, cartRepo, "user-1", models.CartItem{ProductID: product.ID, Quantity: 2})

	assert.NoError(t, cartRepo.DeleteByUser("user-1"))

	// No cart and no orphaned lines remain
	_, err := cartRepo.GetByUser("user-1")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	var itemCount int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount)
	assert.Zero(t, itemCount)

	// Clearing again is a no-op, not an error
	assert.NoError(t, cartRepo.DeleteByUser("user-1"))
	// And a user who never had a cart is also fine
	assert.NoError(t, cartRepo.DeleteByUser("user-never"))
}

func TestCartRepository_UpdateAndDeleteMissingLine(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)

	cart := seedCart(t, cartRepo, "user-1")

	err := cartRepo.UpdateItemQuantity(cart.ID, "missing-product", 3)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	err = cartRepo.DeleteItem(cart.ID, "missing-product")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCartRepository_OneCartPerUser(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repositories.NewGORMCartRepository(db)

	seedCart(t, cartRepo, "user-1")

	err := cartRepo.Create(&models.Cart{UserID: "user-1"})
	assert.Error(t, err, "second cart for the same user must violate the unique index")
}
