package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Commit atomically applies a checkout: each product's stock is decremented
// with a guard against going negative, the order and its frozen lines are
// inserted, and the cart is deleted. Any failure rolls the whole commit back.
// A guarded decrement hitting zero rows means the stock moved since the
// caller validated it, which surfaces as Conflict.
func (r *GORMOrderRepository) Commit(order *models.Order, cartID string) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if err := decrementStock(tx, item.ProductID, item.Quantity); err != nil {
				if apperrors.IsKind(err, apperrors.KindInsufficientStock) {
					return apperrors.New(apperrors.KindConflict,
						"stock for product %s changed during checkout", item.ProductID)
				}
				return err
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return apperrors.Wrap(apperrors.KindInternal, err, "failed to create order")
		}
		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
			return apperrors.Wrap(apperrors.KindInternal, err, "failed to clear cart items after checkout")
		}
		if err := tx.Delete(&models.Cart{}, "id = ?", cartID).Error; err != nil {
			return apperrors.Wrap(apperrors.KindInternal, err, "failed to delete cart after checkout")
		}
		return nil
	})
}

// GetLinesByUser retrieves every order line across all the user's orders,
// flattened with product name, quantity and the frozen purchase price.
// Ordered by order recency then order ID so the result is deterministic.
func (r *GORMOrderRepository) GetLinesByUser(userID string) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	err := r.db.Table("orders").
		Select("orders.id AS order_id, orders.created_at AS date, orders.amount AS amount, products.name AS product_name, order_products.quantity AS quantity, order_products.price AS price").
		Joins("JOIN order_products ON orders.id = order_products.order_id").
		Joins("JOIN products ON order_products.product_id = products.id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC, orders.id, products.name").
		Scan(&lines).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get orders for user %s", userID)
	}
	return lines, nil
}

// GetLinesByIDForUser retrieves the lines of one order scoped to its owner.
// Ownership is part of the lookup predicate so a foreign order is
// indistinguishable from a missing one.
func (r *GORMOrderRepository) GetLinesByIDForUser(orderID, userID string) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	err := r.db.Table("orders").
		Select("orders.id AS order_id, orders.created_at AS date, orders.amount AS amount, products.name AS product_name, order_products.quantity AS quantity, order_products.price AS price").
		Joins("JOIN order_products ON orders.id = order_products.order_id").
		Joins("JOIN products ON order_products.product_id = products.id").
		Where("orders.user_id = ? AND orders.id = ?", userID, orderID).
		Order("products.name").
		Scan(&lines).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get order %s", orderID)
	}
	if len(lines) == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "an order with this id does not exist")
	}
	return lines, nil
}
