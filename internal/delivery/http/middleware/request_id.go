package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/geoapi/pkg/constant"
)

const HeaderRequestID = "X-Request-ID"

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(HeaderRequestID, requestID)
		c.Locals(constant.LocalRequestID, requestID)

		return c.Next()
	}
}
