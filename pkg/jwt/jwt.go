package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	_defaultAccessTokenExpiry  = time.Hour
	_defaultRefreshTokenExpiry = 7 * hoursInDay * time.Hour
)

var (
	ErrInvalidToken   = errors.New("jwt: invalid token")
	ErrWrongTokenType = errors.New("jwt: wrong token type")
)

type JWT struct {
	issuer             string
	audience           string
	secretKey          []byte
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
	now                func() time.Time
}

func New(secretKey string, opts ...Option) *JWT {
	j := &JWT{
		secretKey:          []byte(secretKey),
		accessTokenExpiry:  _defaultAccessTokenExpiry,
		refreshTokenExpiry: _defaultRefreshTokenExpiry,
		now:                time.Now,
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

func (j *JWT) GenerateAccessToken(s Subject) (string, error) {
	return j.generateToken(s, j.accessTokenExpiry, TokenTypeAccess)
}

func (j *JWT) GenerateRefreshToken(s Subject) (string, error) {
	return j.generateToken(s, j.refreshTokenExpiry, TokenTypeRefresh)
}

// ValidateToken verifies signature, expiry, issuer, audience and token type.
func (j *JWT) ValidateToken(tokenString, tokenType string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithTimeFunc(j.now),
	}

	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	if j.audience != "" {
		opts = append(opts, jwt.WithAudience(j.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != tokenType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

func (j *JWT) generateToken(s Subject, expiry time.Duration, tokenType string) (string, error) {
	now := j.now()

	claims := &Claims{
		UserID:    s.UserID,
		Email:     s.Email,
		Roles:     s.Roles,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    j.issuer,
			Subject:   s.UserName,
		},
	}

	if j.audience != "" {
		claims.Audience = jwt.ClaimStrings{j.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signedString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}

	return signedString, nil
}
