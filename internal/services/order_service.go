package services

import (
	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderService handles the read side of the order ledger.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// ListOrders retrieves every order line across all the user's orders.
func (s *OrderService) ListOrders(userID string) ([]models.OrderLine, error) {
	lines, err := s.orderRepo.GetLinesByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "no existing orders for this user")
	}
	return lines, nil
}

// GetOrder retrieves the lines of one order owned by the user. An order that
// exists but belongs to someone else is reported as not found.
func (s *OrderService) GetOrder(userID, orderID string) ([]models.OrderLine, error) {
	return s.orderRepo.GetLinesByIDForUser(orderID, userID)
}
