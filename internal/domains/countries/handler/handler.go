package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/internal/delivery/http/middleware"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	"github.com/savioruz/geoapi/internal/domains/countries/dto"
	"github.com/savioruz/geoapi/internal/domains/countries/service"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/validation"
)

type Handler struct {
	service   service.CountryService
	auth      *middleware.Auth
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.CountryService, a *middleware.Auth, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		auth:      a,
		logger:    l,
		validator: v,
	}
}

const (
	routePath = "/countries"

	errInvalidID = "invalid country id format"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	countries := r.Group(routePath)

	countries.Get("/", h.auth.Jwt(), middleware.UserOnly(), h.GetAll)
	countries.Post("/", h.auth.Jwt(), middleware.AdminOnly(), h.Create)
	countries.Get("/:id", h.auth.Jwt(), middleware.UserOnly(), h.Get)
	countries.Put("/:id", h.auth.Jwt(), middleware.AdminOnly(), h.Update)
	countries.Delete("/:id", h.auth.Jwt(), middleware.AdminOnly(), h.Delete)
}

// GetAll Countries godoc
// @Summary List countries
// @Description Paged list of countries filtered by name and ISO code substrings
// @Tags countries
// @Produce json
// @Param request query dto.GetCountriesRequest false "Paging and filters"
// @Success 200 {object} gdto.PagedList[dto.CountryResponse]
// @Failure 400 {object} response.ValidationProblem
// @Failure 401 {object} response.Problem
// @Router /countries [get]
// @Security BearerAuth
func (h *Handler) GetAll(ctx *fiber.Ctx) error {
	var req dto.GetCountriesRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - country - get all - query parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := failure.Join(
		gdto.ValidatePaging(req.PagedRequest, gdto.Countries),
		validation.Struct(h.validator, req),
	); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.GetAll(ctx.UserContext(), req))
}

// Get Country godoc
// @Summary Get country by id
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /countries/{id} [get]
// @Security BearerAuth
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithResult(ctx, h.service.Get(ctx.UserContext(), id))
}

// Create Country godoc
// @Summary Create country
// @Tags countries
// @Accept json
// @Produce json
// @Param country body dto.CreateCountryRequest true "Country create request"
// @Success 201 {object} dto.CountryResponse
// @Failure 400 {object} response.ValidationProblem
// @Failure 403 {object} response.Problem
// @Failure 409 {object} response.Problem
// @Router /countries [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCountryRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - country - create - body parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := validation.Struct(h.validator, req); err != nil {
		return response.WithError(ctx, err)
	}

	base := strings.TrimSuffix(ctx.Path(), "/")

	return response.WithCreated(ctx, h.service.Create(ctx.UserContext(), req), func(c dto.CountryResponse) string {
		return base + "/" + c.ID
	})
}

// Update Country godoc
// @Summary Update country
// @Tags countries
// @Accept json
// @Param id path string true "Country ID"
// @Param country body dto.UpdateCountryRequest true "Country update request"
// @Success 204
// @Failure 400 {object} response.ValidationProblem
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem
// @Router /countries/{id} [put]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.UpdateCountryRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - country - update - body parsing error: %v", err)

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := validation.Struct(h.validator, req); err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithNoContent(ctx, h.service.Update(ctx.UserContext(), id, req))
}

// Delete Country godoc
// @Summary Delete country and its cities
// @Tags countries
// @Param id path string true "Country ID"
// @Success 204
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /countries/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	id, err := h.id(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithNoContent(ctx, h.service.Delete(ctx.UserContext(), id))
}

func (h *Handler) id(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params(constant.RequestParamID)

	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return "", failure.BadRequestFromString(errInvalidID)
	}

	return id, nil
}
