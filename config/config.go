package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App      App
		CORS     CORS
		Cache    Cache
		HTTP     HTTP
		Log      Log
		Pg       Pg
		Redis    Redis
		Swagger  Swagger
		Schedule Schedule
		JWT      JWT
		Metrics  Metrics
	}

	App struct {
		Name        string `env:"APP_NAME,required"`
		Version     string `env:"APP_VERSION,required"`
		Environment string `env:"APP_ENV" envDefault:"production"`
		// Seed loads the development data set at boot. Ignored outside development.
		Seed bool `env:"APP_SEED" envDefault:"false"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	// Cache durations are in seconds.
	Cache struct {
		Duration int `env:"CACHE_DURATIONS" envDefault:"300"`
	}

	HTTP struct {
		Port         string        `env:"HTTP_PORT,required"`
		ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"5s"`
		BodyLimit    int           `env:"HTTP_BODY_LIMIT" envDefault:"1048576"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Pg struct {
		PoolMax  int    `env:"PG_POOL_MAX,required"`
		Host     string `env:"PG_HOST,required"`
		Port     int    `env:"PG_PORT,required"`
		User     string `env:"PG_USER"`
		Password string `env:"PG_PASSWORD"`
		Dbname   string `env:"PG_DATABASE,required"`
		SSLMode  string `env:"PG_SSLMODE,required"`
		Timezone string `env:"PG_TIMEZONE" envDefault:"UTC"`
		Migrate  bool   `env:"PG_MIGRATE" envDefault:"true"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST,required"`
		Port     int    `env:"REDIS_PORT,required"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Schedule struct {
		RevokedTokensPurge string `env:"SCHEDULE_REVOKED_TOKENS_PURGE" envDefault:"@hourly"`
	}

	JWT struct {
		Secret             string `env:"JWT_SECRET,required,notEmpty"`
		Issuer             string `env:"JWT_ISSUER" envDefault:"geoapi"`
		Audience           string `env:"JWT_AUDIENCE" envDefault:"geoapi-clients"`
		AccessTokenExpiry  string `env:"JWT_ACCESS_TOKEN_EXPIRY"  envDefault:"1h"`
		RefreshTokenExpiry string `env:"JWT_REFRESH_TOKEN_EXPIRY" envDefault:"7d"`
	}

	Metrics struct {
		Enabled bool `env:"METRICS_ENABLED" envDefault:"true"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}
