package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access. Commit is the
// single multi-table write of the system: it must apply the order, its lines,
// the stock decrements and the cart deletion all-or-nothing.
type OrderRepository interface {
	Commit(order *models.Order, cartID string) error
	GetLinesByUser(userID string) ([]models.OrderLine, error)
	GetLinesByIDForUser(orderID, userID string) ([]models.OrderLine, error)
}
