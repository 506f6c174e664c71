package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/payment"
	"storefront/pkg/rabbitmq"
)

// OrderEventPublisher publishes order lifecycle events to the message broker.
type OrderEventPublisher interface {
	PublishOrderCreated(event rabbitmq.OrderCreatedEvent) error
}

// CheckoutReceipt is the outcome of a successful checkout.
type CheckoutReceipt struct {
	OrderID string          `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}

// CheckoutService converts a mutable cart into an immutable, stock-consistent
// order. The commit is all-or-nothing: order, frozen lines, stock decrements
// and cart deletion either all apply or none do.
type CheckoutService struct {
	cartRepo  repositories.CartRepository
	orderRepo repositories.OrderRepository
	gateway   payment.Gateway
	events    OrderEventPublisher
}

// NewCheckoutService creates a new CheckoutService. events may be nil when no
// broker is configured.
func NewCheckoutService(cartRepo repositories.CartRepository, orderRepo repositories.OrderRepository, gateway payment.Gateway, events OrderEventPublisher) *CheckoutService {
	return &CheckoutService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		gateway:   gateway,
		events:    events,
	}
}

// Checkout validates the user's cart against current stock, authorizes the
// payment, and atomically commits the order. Stock is re-validated here even
// though cart mutations already checked it: the add-time check is a soft
// reservation and stock may have moved since.
func (s *CheckoutService) Checkout(userID string) (*CheckoutReceipt, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.New(apperrors.KindValidation, "the user doesn't have a cart")
		}
		return nil, err
	}

	lines, err := s.cartRepo.GetCheckoutLines(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "the cart is empty")
	}
	if err := validateStock(lines); err != nil {
		return nil, err
	}

	total := orderTotal(lines)
	if err := s.gateway.Authorize(userID, total); err != nil {
		return nil, apperrors.Wrap(apperrors.KindPaymentFailed, err, "payment processing failed")
	}

	order := buildOrder(userID, lines, total)
	err = s.orderRepo.Commit(order, cart.ID)
	if apperrors.IsKind(err, apperrors.KindConflict) {
		// A conflict means stock moved between validation and commit.
		// Expected under contention, so re-validate once against the fresh
		// figures and retry before surfacing it.
		lines, err = s.cartRepo.GetCheckoutLines(userID)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			return nil, apperrors.New(apperrors.KindValidation, "the cart is empty")
		}
		if err = validateStock(lines); err != nil {
			return nil, err
		}
		total = orderTotal(lines)
		order = buildOrder(userID, lines, total)
		err = s.orderRepo.Commit(order, cart.ID)
	}
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		event := rabbitmq.OrderCreatedEvent{
			OrderID: order.ID,
			UserID:  userID,
			Total:   total,
			Lines:   len(order.Items),
		}
		if err := s.events.PublishOrderCreated(event); err != nil {
			// Eventing is best-effort: the order is already committed.
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return &CheckoutReceipt{OrderID: order.ID, Total: total}, nil
}

// validateStock verifies every cart line against the live stock figure.
func validateStock(lines []models.CheckoutLine) error {
	for _, line := range lines {
		if line.Quantity > line.StockQty {
			return apperrors.New(apperrors.KindInsufficientStock,
				"insufficient stock for %s. Available stock: %d", line.Name, line.StockQty)
		}
	}
	return nil
}

// orderTotal sums quantity times current price over all lines.
func orderTotal(lines []models.CheckoutLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// buildOrder freezes the cart lines into an immutable order at the prices
// used for the total.
func buildOrder(userID string, lines []models.CheckoutLine, total decimal.Decimal) *models.Order {
	order := &models.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Amount:    total,
		CreatedAt: time.Now(),
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return order
}
