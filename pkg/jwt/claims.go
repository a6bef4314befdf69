package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access_token"
	TokenTypeRefresh = "refresh_token"
)

// Subject is who a token is issued for. UserName becomes the "sub" claim.
type Subject struct {
	UserID   string
	UserName string
	Email    string
	Roles    []string
}

type Claims struct {
	UserID    string   `json:"uid"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
	TokenType string   `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) HasRole(roles ...string) bool {
	for _, have := range c.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}

	return false
}
