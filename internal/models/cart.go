package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is a user's active shopping cart. A user has at most one, created
// lazily on the first add and deleted on checkout or explicit clear.
// Deliberately no gorm.Model: carts are hard-deleted so a fresh one can be
// created for the same user afterwards.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID"`
}

// CartItem is one product-and-quantity entry within a cart.
type CartItem struct {
	CartID    string `json:"cart_id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string `json:"product_id" gorm:"primaryKey;type:varchar(36)"`
	Quantity  int    `json:"quantity"`
}

// TableName keeps the cart line table named after its relational layout.
func (CartItem) TableName() string {
	return "cart_products"
}

// CartLine is a cart item joined with its product, as shown to the customer.
// Price is the current catalog price, not a frozen one.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CheckoutLine is a cart line enriched with the live stock figure, read by
// the checkout engine when it re-validates the cart.
type CheckoutLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	StockQty  int             `json:"stock_qty"`
}
