package postgres

import (
	"time"

	"github.com/savioruz/geoapi/pkg/logger"
)

type Option func(*Postgres)

// MaxPoolSize sets the maximum number of connections in the pool.
func MaxPoolSize(size int) Option {
	return func(c *Postgres) {
		c.maxPoolSize = size
	}
}

// ConnAttempts sets the number of connection attempts before giving up.
func ConnAttempts(attempts int) Option {
	return func(c *Postgres) {
		c.connAttempts = attempts
	}
}

// ConnTimeout sets the connection timeout duration.
func ConnTimeout(timeout time.Duration) Option {
	return func(c *Postgres) {
		c.connTimeout = timeout
	}
}

// Logger reports connection retries.
func Logger(l logger.Interface) Option {
	return func(c *Postgres) {
		c.logger = l
	}
}
