package middleware

import (
	"antistress/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID attaches a correlation id to every request, honoring one supplied
// by the caller, and logs the request under it.
func RequestID() fiber.Handler {
	log := logger.New("middleware").Function("RequestID")

	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Locals("requestID", requestID)
		c.Set(RequestIDHeader, requestID)

		log.Debug("request",
			"requestID", requestID,
			"method", c.Method(),
			"path", c.Path(),
		)

		return c.Next()
	}
}
