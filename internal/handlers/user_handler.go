package handlers

import (
	"log"

	"storefront/internal/middleware"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles. Every route is
// restricted to the profile's owner.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user profile routes with the Fiber app. The
// router is expected to already require authentication.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users", ownerOnly)
	userRoutes.Get("/:id", h.HandleGetProfile)
	userRoutes.Put("/:id", h.HandleUpdateProfile)
	userRoutes.Delete("/:id", h.HandleDeleteProfile)
}

// ownerOnly rejects callers accessing a profile other than their own.
func ownerOnly(c *fiber.Ctx) error {
	if middleware.UserID(c) != c.Params("id") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "forbidden: access to this resource is restricted",
		})
	}
	return c.Next()
}

// HandleGetProfile retrieves the caller's profile.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleUpdateProfile applies a partial update to the caller's profile.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var patch services.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing update profile request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.service.UpdateProfile(c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User profile updated",
		"user":    user,
	})
}

// HandleDeleteProfile deletes the caller's profile.
func (h *UserHandler) HandleDeleteProfile(c *fiber.Ctx) error {
	if err := h.service.DeleteProfile(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User profile deleted",
	})
}
