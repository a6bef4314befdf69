package jwt

import (
	"strings"
	"time"
)

const (
	hoursInDay = 24
)

type Option func(*JWT)

func Issuer(issuer string) Option {
	return func(j *JWT) {
		j.issuer = issuer
	}
}

func Audience(audience string) Option {
	return func(j *JWT) {
		j.audience = audience
	}
}

func AccessTokenExpiry(d time.Duration) Option {
	return func(j *JWT) {
		j.accessTokenExpiry = d
	}
}

func RefreshTokenExpiry(d time.Duration) Option {
	return func(j *JWT) {
		j.refreshTokenExpiry = d
	}
}

// ParseDuration extends time.ParseDuration with a "d" (days) suffix.
func ParseDuration(s string) time.Duration {
	if strings.HasSuffix(s, "d") {
		days := strings.TrimSuffix(s, "d")
		if d, err := time.ParseDuration(days + "h"); err == nil {
			return d * hoursInDay
		}
	}

	d, _ := time.ParseDuration(s)

	return d
}
