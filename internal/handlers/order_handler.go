package handlers

import (
	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for the order ledger.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app. The router is
// expected to already require an authenticated customer.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/:orderId", h.HandleGetOrder)
}

// HandleListOrders retrieves every order line across all the caller's orders.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	lines, err := h.service.ListOrders(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"orders": lines,
	})
}

// HandleGetOrder retrieves one of the caller's orders by ID.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	lines, err := h.service.GetOrder(middleware.UserID(c), c.Params("orderId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"order": lines,
	})
}
