package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/savioruz/geoapi/config"
	_ "github.com/savioruz/geoapi/docs" // Swagger docs
	"github.com/savioruz/geoapi/internal/delivery/http/middleware"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	authHandler "github.com/savioruz/geoapi/internal/domains/auth/handler"
	cityHandler "github.com/savioruz/geoapi/internal/domains/cities/handler"
	countryHandler "github.com/savioruz/geoapi/internal/domains/countries/handler"
	userHandler "github.com/savioruz/geoapi/internal/domains/user/handler"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/logger"
)

const errRouteNotFound = "The requested resource does not exist."

type Handlers struct {
	Auth    *authHandler.Handler
	User    *userHandler.Handler
	Country *countryHandler.Handler
	City    *cityHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title GeoApi
// @version 1.0
// @description Countries and their cities behind JWT authentication.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	metrics *middleware.Metrics,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.RequestID())
	app.Use(middleware.VerboseErrors(cfg))
	app.Use(middleware.Logger(l))

	if cfg.Metrics.Enabled {
		app.Use(metrics.Handler())
		app.Get("/metrics", metrics.Endpoint())
	}

	app.Use(middleware.Recovery(l))
	app.Use(middleware.CORS(cfg))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "version": cfg.App.Version})
	})

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	apiV1Group := app.Group("/api/v1")
	{
		handlers.Auth.RegisterRoutes(apiV1Group)
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.Country.RegisterRoutes(apiV1Group)
		handlers.City.RegisterRoutes(apiV1Group)
	}

	app.Use(func(c *fiber.Ctx) error {
		return response.WithError(c, failure.NotFound(errRouteNotFound))
	})
}
