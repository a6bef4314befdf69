package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/jwt"
	"github.com/savioruz/geoapi/pkg/logger"
)

// RevocationChecker reports whether a token id was revoked by a logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Auth struct {
	jwt     *jwt.JWT
	revoked RevocationChecker
	logger  logger.Interface
}

func NewAuth(j *jwt.JWT, r RevocationChecker, l logger.Interface) *Auth {
	return &Auth{
		jwt:     j,
		revoked: r,
		logger:  l,
	}
}

// Jwt authenticates the bearer access token and stores its claims in the request locals.
func (a *Auth) Jwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return response.WithError(c, failure.Unauthorized("missing authorization header"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.WithError(c, failure.Unauthorized("invalid authorization header format"))
		}

		claims, err := a.jwt.ValidateToken(parts[1], jwt.TokenTypeAccess)
		if err != nil {
			return response.WithError(c, failure.Unauthorized("invalid token"))
		}

		revoked, err := a.revoked.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			a.logger.Error("http - middleware - jwt - failed to check revocation: %v", err)

			return response.WithError(c, err)
		}

		if revoked {
			return response.WithError(c, failure.Unauthorized("token has been revoked"))
		}

		c.Locals(constant.JwtFieldUser, claims.UserID)
		c.Locals(constant.JwtFieldUserName, claims.Subject)
		c.Locals(constant.JwtFieldEmail, claims.Email)
		c.Locals(constant.JwtFieldRoles, claims.Roles)
		c.Locals(constant.JwtFieldTokenID, claims.ID)

		if claims.ExpiresAt != nil {
			c.Locals(constant.JwtFieldExpiry, claims.ExpiresAt.Time)
		}

		return c.Next()
	}
}
