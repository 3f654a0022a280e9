package middleware

import (
	"paygate/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger attaches a logger carrying the request id to the user
// context. An incoming X-Request-ID is kept.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)

		l := logger.L.With("request_id", id, "method", c.Method(), "path", c.Path())
		c.SetUserContext(logger.WithContext(c.UserContext(), l))
		return c.Next()
	}
}
