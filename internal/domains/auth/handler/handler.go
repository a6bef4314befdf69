package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/internal/delivery/http/middleware"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	"github.com/savioruz/geoapi/internal/domains/auth/dto"
	"github.com/savioruz/geoapi/internal/domains/auth/service"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/password"
	"github.com/savioruz/geoapi/pkg/validation"
)

const errMissingTokenID = "missing token id claim"

type Handler struct {
	service   service.AuthService
	auth      *middleware.Auth
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.AuthService, a *middleware.Auth, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		auth:      a,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.auth.Jwt(), h.Logout)
}

// Register godoc
// @Summary Register new user
// @Description Creates a user with the User role and returns a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Register request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} response.ValidationProblem
// @Failure 409 {object} response.Problem
// @Router /auth/register [post]
func (h *Handler) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - register - body parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := failure.Join(
		validation.Struct(h.validator, req),
		password.Validate(req.Password),
	); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.Register(ctx.UserContext(), req))
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} response.ValidationProblem
// @Failure 401 {object} response.Problem
// @Router /auth/login [post]
func (h *Handler) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - login - body parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := validation.Struct(h.validator, req); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.Login(ctx.UserContext(), req))
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Refresh request"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} response.ValidationProblem
// @Failure 401 {object} response.Problem
// @Router /auth/refresh [post]
func (h *Handler) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - refresh - body parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := validation.Struct(h.validator, req); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.Refresh(ctx.UserContext(), req))
}

// Logout godoc
// @Summary Revoke the current access token
// @Tags auth
// @Success 204
// @Failure 401 {object} response.Problem
// @Router /auth/logout [post]
// @Security BearerAuth
func (h *Handler) Logout(ctx *fiber.Ctx) error {
	tokenID, ok := ctx.Locals(constant.JwtFieldTokenID).(string)
	if !ok || tokenID == "" {
		return response.WithError(ctx, failure.Unauthorized(errMissingTokenID))
	}

	expiresAt, ok := ctx.Locals(constant.JwtFieldExpiry).(time.Time)
	if !ok {
		expiresAt = time.Now()
	}

	return response.WithNoContent(ctx, h.service.Logout(ctx.UserContext(), tokenID, expiresAt))
}
