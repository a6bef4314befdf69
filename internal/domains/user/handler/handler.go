package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/internal/delivery/http/middleware"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	"github.com/savioruz/geoapi/internal/domains/user/dto"
	"github.com/savioruz/geoapi/internal/domains/user/service"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/validation"
)

const (
	errInvalidID     = "invalid user id format"
	errMissingClaims = "missing user id claim"
)

type Handler struct {
	service   service.UserService
	auth      *middleware.Auth
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.UserService, a *middleware.Auth, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		auth:      a,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	users := r.Group("/users")

	users.Get("/me", h.auth.Jwt(), middleware.UserOnly(), h.Profile)

	// Admin routes
	users.Get("/", h.auth.Jwt(), middleware.AdminOnly(), h.GetAll)
	users.Get("/:id", h.auth.Jwt(), middleware.AdminOnly(), h.GetByID)
	users.Put("/:id/roles", h.auth.Jwt(), middleware.AdminOnly(), h.UpdateRoles)
}

// Profile godoc
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /users/me [get]
// @Security BearerAuth
func (h *Handler) Profile(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals(constant.JwtFieldUser).(string)
	if !ok || userID == "" {
		h.logger.Error("http - user - profile - %s", errMissingClaims)

		return response.WithError(ctx, failure.Unauthorized(errMissingClaims))
	}

	return response.WithResult(ctx, h.service.Profile(ctx.UserContext(), userID))
}

// GetAll Users godoc
// @Summary List users (Admin only)
// @Description Paged list of users filtered by user name and email substrings
// @Tags users
// @Produce json
// @Param request query dto.GetUsersRequest false "Paging and filters"
// @Success 200 {object} gdto.PagedList[dto.UserResponse]
// @Failure 400 {object} response.ValidationProblem
// @Failure 403 {object} response.Problem
// @Router /users [get]
// @Security BearerAuth
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	var req dto.GetUsersRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - user - get all - query parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := failure.Join(
		gdto.ValidatePaging(req.PagedRequest, gdto.Users),
		validation.Struct(h.validator, req),
	); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.GetAll(ctx.UserContext(), req))
}

// GetByID godoc
// @Summary Get user by id (Admin only)
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /users/{id} [get]
// @Security BearerAuth
func (h *Handler) GetByID(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.GetByID(ctx.UserContext(), id))
}

// UpdateRoles godoc
// @Summary Replace user roles (Admin only)
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Param roles body dto.UpdateUserRolesRequest true "Roles"
// @Success 204
// @Failure 400 {object} response.ValidationProblem
// @Failure 404 {object} response.Problem
// @Router /users/{id}/roles [put]
// @Security BearerAuth
func (h *Handler) UpdateRoles(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.UpdateUserRolesRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - user - update roles - body parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := validation.Struct(h.validator, req); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithNoContent(ctx, h.service.UpdateRoles(ctx.UserContext(), id, req))
}

func (h *Handler) id(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params(constant.RequestParamID)

	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return "", failure.BadRequestFromString(errInvalidID)
	}

	return id, nil
}
