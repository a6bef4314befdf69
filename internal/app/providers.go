package app

import (
	"fmt"

	"github.com/google/wire"
	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/internal/delivery/http"
	"github.com/savioruz/geoapi/internal/delivery/http/middleware"
	"github.com/savioruz/geoapi/internal/delivery/http/response"

	authHandler "github.com/savioruz/geoapi/internal/domains/auth/handler"
	authRepository "github.com/savioruz/geoapi/internal/domains/auth/repository"
	authService "github.com/savioruz/geoapi/internal/domains/auth/service"

	userHandler "github.com/savioruz/geoapi/internal/domains/user/handler"
	userRepository "github.com/savioruz/geoapi/internal/domains/user/repository"
	userService "github.com/savioruz/geoapi/internal/domains/user/service"

	countryHandler "github.com/savioruz/geoapi/internal/domains/countries/handler"
	countryRepository "github.com/savioruz/geoapi/internal/domains/countries/repository"
	countryService "github.com/savioruz/geoapi/internal/domains/countries/service"

	cityHandler "github.com/savioruz/geoapi/internal/domains/cities/handler"
	cityRepository "github.com/savioruz/geoapi/internal/domains/cities/repository"
	cityService "github.com/savioruz/geoapi/internal/domains/cities/service"

	"github.com/savioruz/geoapi/pkg/httpserver"
	"github.com/savioruz/geoapi/pkg/jwt"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/postgres"
	"github.com/savioruz/geoapi/pkg/redis"
	"github.com/savioruz/geoapi/pkg/validation"
)

const metricsNamespace = "geoapi"

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	Auth       authService.AuthService
	Seeder     *Seeder
}

var infrastructure = wire.NewSet(
	provideLogger,
	providePostgres,
	providePgxIface,
	provideRedis,
	provideRedisCache,
	validation.New,
	provideJWT,
	provideAuthMiddleware,
	provideMetrics,
)

var authDomain = wire.NewSet(
	provideTokenQuerier,
	authService.New,
	authHandler.New,
)

var userDomain = wire.NewSet(
	provideUserStore,
	provideUserQuerier,
	userService.New,
	userHandler.New,
)

var countryDomain = wire.NewSet(
	provideCountryStore,
	provideCountryQuerier,
	countryService.New,
	countryHandler.New,
)

var cityDomain = wire.NewSet(
	provideCityStore,
	provideCityQuerier,
	cityService.New,
	cityHandler.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	countryDomain,
	cityDomain,
)

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode, cfg.Pg.Timezone)

	pg, err := postgres.New(dsn, postgres.MaxPoolSize(cfg.Pg.PoolMax), postgres.Logger(l))
	if err != nil {
		return nil, err
	}

	return pg, nil
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.Cache {
	return redis.NewCache(r.Client, l)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	return jwt.New(cfg.JWT.Secret,
		jwt.Issuer(cfg.JWT.Issuer),
		jwt.Audience(cfg.JWT.Audience),
		jwt.AccessTokenExpiry(jwt.ParseDuration(cfg.JWT.AccessTokenExpiry)),
		jwt.RefreshTokenExpiry(jwt.ParseDuration(cfg.JWT.RefreshTokenExpiry)),
	)
}

func provideAuthMiddleware(j *jwt.JWT, s authService.AuthService, l logger.Interface) *middleware.Auth {
	return middleware.NewAuth(j, s, l)
}

func provideMetrics() *middleware.Metrics {
	return middleware.NewMetrics(metricsNamespace)
}

func provideTokenQuerier() authRepository.Querier {
	return authRepository.New()
}

func provideUserStore() userRepository.Store {
	return userRepository.New()
}

func provideUserQuerier(s userRepository.Store) userRepository.Querier {
	return s
}

func provideCountryStore() countryRepository.Store {
	return countryRepository.New()
}

func provideCountryQuerier(s countryRepository.Store) countryRepository.Querier {
	return s
}

func provideCityStore() cityRepository.Store {
	return cityRepository.New()
}

func provideCityQuerier(s cityRepository.Store) cityRepository.Querier {
	return s
}

func provideHTTPServer(
	cfg *config.Config,
	l logger.Interface,
	metrics *middleware.Metrics,
	h http.Handlers,
) *httpserver.Server {
	server := httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.BodyLimit(cfg.HTTP.BodyLimit),
		httpserver.AppName(cfg.App.Name),
		httpserver.ErrorHandler(response.ErrorHandler),
	)

	http.NewRouter(server.App, cfg, l, metrics, h)

	return server
}
