package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/matcher"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/services"
	"github.com/GMohankrishna2005/AI-Powered-Chatbot/internal/storage"
)

// errorResponse maps engine failures onto HTTP status codes. Caller-fault
// errors come back 4xx with the underlying detail; store failures hide the
// internals behind a generic message.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, matcher.ErrInvalidInput), errors.Is(err, services.ErrInvalidParameter):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, storage.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Conversation not found",
		})
	case errors.Is(err, storage.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Service temporarily unavailable. Please try again later.",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
