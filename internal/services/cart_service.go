package services

import (
	"github.com/google/uuid"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService handles business logic for the shopping cart. Stock checks at
// cart-mutation time are soft reservations: they compare against the live
// stock figure without holding it, and checkout re-validates.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart retrieves the user's cart lines with product names and current
// prices. A user with no cart gets an empty result, never an error.
func (s *CartService) GetCart(userID string) ([]models.CartLine, error) {
	return s.cartRepo.GetLines(userID)
}

// AddItem adds quantity units of the named product to the user's cart,
// lazily creating the cart. If the product is already in the cart the
// quantities sum; the combined quantity must not exceed current stock.
// Returns true when a new line was created, false when an existing one
// was topped up.
func (s *CartService) AddItem(userID, productName string, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, apperrors.New(apperrors.KindValidation, "quantity must be a positive integer")
	}

	product, err := s.productRepo.GetByName(productName)
	if err != nil {
		return false, err
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		if !apperrors.IsKind(err, apperrors.KindNotFound) {
			return false, err
		}
		cart = &models.Cart{ID: uuid.New().String(), UserID: userID}
		if err := s.cartRepo.Create(cart); err != nil {
			return false, err
		}
	}

	held := 0
	if item, err := s.cartRepo.GetItem(cart.ID, product.ID); err == nil {
		held = item.Quantity
	} else if !apperrors.IsKind(err, apperrors.KindNotFound) {
		return false, err
	}

	if held+quantity > product.StockQty {
		return false, apperrors.New(apperrors.KindCapacityExceeded,
			"requested quantity exceeds available stock. Available stock: %d, quantity already in the cart: %d",
			product.StockQty, held)
	}

	if held > 0 {
		return false, s.cartRepo.UpdateItemQuantity(cart.ID, product.ID, held+quantity)
	}
	return true, s.cartRepo.CreateItem(&models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  quantity,
	})
}

// SetItemQuantity sets the quantity of a product already in the cart.
// Quantity zero removes the line and succeeds even when the line is already
// absent. No stock re-check is done on reduction.
func (s *CartService) SetItemQuantity(userID, productID string, quantity int) error {
	if quantity < 0 {
		return apperrors.New(apperrors.KindValidation, "quantity must be provided and should not be negative")
	}

	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return err
	}

	if quantity == 0 {
		// Zero means "absent": removing a line that is not there succeeds.
		if err := s.cartRepo.DeleteItem(cart.ID, productID); err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
			return err
		}
		return nil
	}

	return s.cartRepo.UpdateItemQuantity(cart.ID, productID, quantity)
}

// RemoveItem deletes one product line from the user's cart.
func (s *CartService) RemoveItem(userID, productID string) error {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.DeleteItem(cart.ID, productID)
}

// ClearCart deletes the user's cart and all its lines. A no-op when the user
// has no cart.
func (s *CartService) ClearCart(userID string) error {
	return s.cartRepo.DeleteByUser(userID)
}
