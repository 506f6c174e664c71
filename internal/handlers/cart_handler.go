package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. The router is
// expected to already require an authenticated customer.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAddItem)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Put("/:productId", h.HandleSetItemQuantity)
	cartRoutes.Delete("/:productId", h.HandleRemoveItem)
}

// HandleGetCart retrieves the caller's cart with product names and current
// prices.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	lines, err := h.service.GetCart(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if len(lines) == 0 {
		return c.JSON(fiber.Map{
			"message": "The cart is empty",
		})
	}
	return c.JSON(fiber.Map{
		"cart": lines,
	})
}

// AddItemRequest represents the request body for adding a product to the cart.
type AddItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem adds a product to the caller's cart by product name.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "quantity must be an integer",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name or quantity field is missing",
		})
	}

	created, err := h.service.AddItem(middleware.UserID(c), req.Name, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	if !created {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Quantity updated in the cart",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added to the cart",
	})
}

// SetQuantityRequest represents the request body for a cart line update.
// Quantity is a pointer so zero (remove the line) is distinguishable from
// a missing field.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// HandleSetItemQuantity updates the quantity of a product in the cart.
// Quantity zero removes the line.
func (h *CartHandler) HandleSetItemQuantity(c *fiber.Ctx) error {
	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing set quantity request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "quantity must be an integer",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "quantity must be provided and should not be negative",
		})
	}

	if err := h.service.SetItemQuantity(middleware.UserID(c), c.Params("productId"), *req.Quantity); err != nil {
		return respondError(c, err)
	}
	if *req.Quantity == 0 {
		return c.JSON(fiber.Map{
			"message": "Product removed from the cart",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product quantity updated",
	})
}

// HandleRemoveItem deletes one product line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(middleware.UserID(c), c.Params("productId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product removed successfully",
	})
}

// HandleClearCart deletes the caller's cart and all its lines.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.ClearCart(middleware.UserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "The cart is clear",
	})
}
