package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/apperrors"
)

// statusForKind maps the stable error kinds onto HTTP status codes.
func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperrors.KindForbidden:
		return fiber.StatusForbidden
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindValidation, apperrors.KindCapacityExceeded, apperrors.KindInsufficientStock:
		return fiber.StatusBadRequest
	case apperrors.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes a structured error response for err.
func respondError(c *fiber.Ctx, err error) error {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInternal || kind == apperrors.KindPaymentFailed {
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(statusForKind(kind)).JSON(fiber.Map{
		"error": apperrors.Message(err),
	})
}
