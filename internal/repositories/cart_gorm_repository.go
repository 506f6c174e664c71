package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves the user's cart, without its line items.
func (r *GORMCartRepository) GetByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "the cart is empty or does not exist")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get cart for user %s", userID)
	}
	return &cart, nil
}

// Create creates a new cart for a user.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	if err := r.db.Create(cart).Error; err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "failed to create cart")
	}
	return nil
}

// GetItem retrieves one cart line by its (cart, product) key.
func (r *GORMCartRepository) GetItem(cartID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "cart_id = ? AND product_id = ?", cartID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "this product is not present in the cart")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get cart item")
	}
	return &item, nil
}

// CreateItem inserts a new cart line.
func (r *GORMCartRepository) CreateItem(item *models.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "failed to add product to cart")
	}
	return nil
}

// UpdateItemQuantity sets the quantity of an existing cart line.
func (r *GORMCartRepository) UpdateItemQuantity(cartID, productID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.KindInternal, res.Error, "failed to update cart item quantity")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "this product is not present in the cart")
	}
	return nil
}

// DeleteItem removes one line from the cart.
func (r *GORMCartRepository) DeleteItem(cartID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "cart_id = ? AND product_id = ?", cartID, productID)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.KindInternal, res.Error, "failed to remove product from cart")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "the product does not exist in the cart")
	}
	return nil
}

// DeleteByUser removes the user's cart and all its lines. A no-op when the
// user has no cart.
func (r *GORMCartRepository) DeleteByUser(userID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.First(&cart, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", cart.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, "id = ?", cart.ID).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "failed to clear cart for user %s", userID)
	}
	return nil
}

// GetLines retrieves the user's cart joined with product names and current
// catalog prices.
func (r *GORMCartRepository) GetLines(userID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.Table("carts").
		Select("products.id AS product_id, products.name AS name, cart_products.quantity AS quantity, products.price AS price").
		Joins("JOIN cart_products ON carts.id = cart_products.cart_id").
		Joins("JOIN products ON cart_products.product_id = products.id").
		Where("carts.user_id = ?", userID).
		Order("products.name").
		Scan(&lines).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get cart lines for user %s", userID)
	}
	return lines, nil
}

// GetCheckoutLines retrieves the cart lines together with the live stock
// figure, for the checkout engine's re-validation.
func (r *GORMCartRepository) GetCheckoutLines(userID string) ([]models.CheckoutLine, error) {
	var lines []models.CheckoutLine
	err := r.db.Table("carts").
		Select("products.id AS product_id, products.name AS name, cart_products.quantity AS quantity, products.price AS price, products.stock_qty AS stock_qty").
		Joins("JOIN cart_products ON carts.id = cart_products.cart_id").
		Joins("JOIN products ON cart_products.product_id = products.id").
		Where("carts.user_id = ?", userID).
		Order("products.name").
		Scan(&lines).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to get checkout lines for user %s", userID)
	}
	return lines, nil
}
