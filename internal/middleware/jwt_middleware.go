package middleware

import (
	"log"
	"strings"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that checks for a valid JWT token and
// stores the caller's identity in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "user not logged in",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authorization header format must be 'Bearer <token>'",
			})
		}

		identity, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		// Store identity in Fiber context for subsequent handlers
		c.Locals("user_id", identity.UserID)
		c.Locals("role", identity.Role)

		return c.Next()
	}
}

// CustomerOnly rejects callers whose role is not customer. Must run after
// AuthRequired.
func CustomerOnly() fiber.Handler {
	return requireRole(models.RoleCustomer)
}

// SellerOnly rejects callers whose role is not seller. Must run after
// AuthRequired.
func SellerOnly() fiber.Handler {
	return requireRole(models.RoleSeller)
}

func requireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("role") != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden: you are not authorized to access this resource",
			})
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller's user ID from the request context.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
