package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/internal/delivery/http/middleware"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	"github.com/savioruz/geoapi/internal/domains/cities/dto"
	"github.com/savioruz/geoapi/internal/domains/cities/service"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/validation"
)

type Handler struct {
	service   service.CityService
	auth      *middleware.Auth
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.CityService, a *middleware.Auth, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		auth:      a,
		logger:    l,
		validator: v,
	}
}

const (
	routePath = "/countries/:countryId/cities"

	errInvalidCountryID = "invalid country id format"
	errInvalidID        = "invalid city id format"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	cities := r.Group(routePath)

	cities.Get("/", h.auth.Jwt(), middleware.UserOnly(), h.GetAll)
	cities.Post("/", h.auth.Jwt(), middleware.AdminOnly(), h.Create)
	cities.Get("/:id", h.auth.Jwt(), middleware.UserOnly(), h.Get)
	cities.Put("/:id", h.auth.Jwt(), middleware.AdminOnly(), h.Update)
	cities.Delete("/:id", h.auth.Jwt(), middleware.AdminOnly(), h.Delete)
}

// GetAll Cities godoc
// @Summary List cities of a country
// @Description Paged list of a country's cities filtered by name substring and exact coordinates
// @Tags cities
// @Produce json
// @Param countryId path string true "Country ID"
// @Param request query dto.GetCitiesRequest false "Paging and filters"
// @Success 200 {object} gdto.PagedList[dto.CityResponse]
// @Failure 400 {object} response.ValidationProblem
// @Failure 404 {object} response.Problem
// @Router /countries/{countryId}/cities [get]
// @Security BearerAuth
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	countryID, err := h.countryID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.GetCitiesRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - city - get all - query parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := failure.Join(
		gdto.ValidatePaging(req.PagedRequest, gdto.Cities),
		validation.Struct(h.validator, req),
	); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.GetAll(ctx.UserContext(), countryID, req))
}

// Get City godoc
// @Summary Get city by id
// @Tags cities
// @Produce json
// @Param countryId path string true "Country ID"
// @Param id path string true "City ID"
// @Success 200 {object} dto.CityResponse
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /countries/{countryId}/cities/{id} [get]
// @Security BearerAuth
func (h *Handler) Get(ctx *fiber.Ctx) error {
	countryID, id, err := h.ids(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.Get(ctx.UserContext(), countryID, id))
}

// Create City godoc
// @Summary Create city in a country
// @Tags cities
// @Accept json
// @Produce json
// @Param countryId path string true "Country ID"
// @Param city body dto.CreateCityRequest true "City create request"
// @Success 201 {object} dto.CityResponse
// @Failure 400 {object} response.ValidationProblem
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem
// @Router /countries/{countryId}/cities [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	countryID, err := h.countryID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.CreateCityRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - city - create - body parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := validation.Struct(h.validator, req); err != nil {
		return response.WithError(ctx, err)
	}

	base := strings.TrimSuffix(ctx.Path(), "/")

	return response.WithCreated(ctx, h.service.Create(ctx.UserContext(), countryID, req), func(c dto.CityResponse) string {
		return base + "/" + c.ID
	})
}

// Update City godoc
// @Summary Update city
// @Tags cities
// @Accept json
// @Param countryId path string true "Country ID"
// @Param id path string true "City ID"
// @Param city body dto.UpdateCityRequest true "City update request"
// @Success 204
// @Failure 400 {object} response.ValidationProblem
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem
// @Router /countries/{countryId}/cities/{id} [put]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	countryID, id, err := h.ids(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.UpdateCityRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - city - update - body parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := validation.Struct(h.validator, req); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithNoContent(ctx, h.service.Update(ctx.UserContext(), countryID, id, req))
}

// Delete City godoc
// @Summary Delete city
// @Tags cities
// @Param countryId path string true "Country ID"
// @Param id path string true "City ID"
// @Success 204
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /countries/{countryId}/cities/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	countryID, id, err := h.ids(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithNoContent(ctx, h.service.Delete(ctx.UserContext(), countryID, id))
}

func (h *Handler) countryID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params(constant.RequestParamCountryID)

	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return "", failure.BadRequestFromString(errInvalidCountryID)
	}

	return id, nil
}

func (h *Handler) ids(ctx *fiber.Ctx) (string, string, error) {
	countryID, err := h.countryID(ctx)
	if err != nil {
		return "", "", err
	}

	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return "", "", failure.BadRequestFromString(errInvalidID)
	}

	return countryID, id, nil
}
