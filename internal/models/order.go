package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable record of a committed checkout.
type Order struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem is one purchased product within an order. Price is the unit
// price at the time of purchase, never recomputed from the catalog.
type OrderItem struct {
	OrderID   string          `json:"order_id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string          `json:"product_id" gorm:"primaryKey;type:varchar(36)"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}

// TableName keeps the order line table named after its relational layout.
func (OrderItem) TableName() string {
	return "order_products"
}

// OrderLine is one purchased product joined with its parent order and the
// product name, the flattened shape returned by order queries.
type OrderLine struct {
	OrderID     string          `json:"order_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}
