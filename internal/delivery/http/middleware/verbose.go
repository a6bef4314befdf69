package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/pkg/constant"
)

// VerboseErrors enables internal error details in problem bodies for development and test
// environments.
func VerboseErrors(cfg *config.Config) fiber.Handler {
	env := strings.ToLower(cfg.App.Environment)
	verbose := env == constant.EnvDevelopment || env == constant.EnvTest

	return func(c *fiber.Ctx) error {
		c.Locals(constant.LocalVerbose, verbose)

		return c.Next()
	}
}
