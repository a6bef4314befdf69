package httpserver

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := New()

		assert.Equal(t, _defaultAddr, s.address)
		assert.Equal(t, fiber.DefaultBodyLimit, s.App.Config().BodyLimit)
	})

	t.Run("error handler and body limit applied", func(t *testing.T) {
		s := New(
			Port("8081"),
			BodyLimit(8),
			ErrorHandler(func(c *fiber.Ctx, err error) error {
				return c.Status(fiber.StatusTeapot).SendString(err.Error())
			}),
		)

		s.App.Post("/", func(c *fiber.Ctx) error {
			return fiber.ErrBadRequest
		})

		res, err := s.App.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader("{}")))
		require.NoError(t, err)

		assert.Equal(t, ":8081", s.address)
		assert.Equal(t, fiber.StatusTeapot, res.StatusCode)
		assert.Equal(t, 8, s.App.Config().BodyLimit)
	})
}
