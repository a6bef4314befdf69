package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
)

func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, ok := c.Locals(constant.JwtFieldRoles).([]string)
		if !ok {
			return response.WithError(c, failure.Unauthorized("role information not found"))
		}

		for _, role := range roles {
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					return c.Next()
				}
			}
		}

		return response.WithError(c, failure.Forbidden("insufficient permissions"))
	}
}

// UserOnly accepts any authenticated User or Admin.
func UserOnly() fiber.Handler {
	return CheckRole(constant.RoleUser, constant.RoleAdmin)
}

// AdminOnly accepts Admin only.
func AdminOnly() fiber.Handler {
	return CheckRole(constant.RoleAdmin)
}
