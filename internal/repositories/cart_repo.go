package repositories

import (
	"storefront/internal/models"
)

// CartRepository defines the interface for cart data access. A user has at
// most one cart; line operations are keyed by (cart, product).
type CartRepository interface {
	GetByUser(userID string) (*models.Cart, error)
	Create(cart *models.Cart) error
	GetItem(cartID, productID string) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItemQuantity(cartID, productID string, quantity int) error
	DeleteItem(cartID, productID string) error
	DeleteByUser(userID string) error
	GetLines(userID string) ([]models.CartLine, error)
	GetCheckoutLines(userID string) ([]models.CheckoutLine, error)
}
