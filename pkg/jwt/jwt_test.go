package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *JWT {
	return New("test-secret-key",
		Issuer("GeoApi"),
		Audience("GeoApiClients"),
		AccessTokenExpiry(time.Hour),
		RefreshTokenExpiry(24*time.Hour),
	)
}

var subject = Subject{
	UserID:   "0b9d1f0e-7c5a-4a8e-9a45-5c7c0f6b8e11",
	UserName: "admin",
	Email:    "admin@geoapi.com",
	Roles:    []string{"Admin"},
}

func TestJWT_RoundTrip(t *testing.T) {
	j := newTestJWT()

	token, err := j.GenerateAccessToken(subject)
	require.NoError(t, err)

	claims, err := j.ValidateToken(token, TokenTypeAccess)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, subject.UserID, claims.UserID)
	assert.Equal(t, subject.Email, claims.Email)
	assert.True(t, claims.HasRole("Admin"))
	assert.False(t, claims.HasRole("User"))
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "GeoApi", claims.Issuer)
}

func TestJWT_UniqueTokenID(t *testing.T) {
	j := newTestJWT()

	a, err := j.GenerateAccessToken(subject)
	require.NoError(t, err)
	b, err := j.GenerateAccessToken(subject)
	require.NoError(t, err)

	ca, _ := j.ValidateToken(a, TokenTypeAccess)
	cb, _ := j.ValidateToken(b, TokenTypeAccess)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestJWT_Rejects(t *testing.T) {
	j := newTestJWT()

	t.Run("wrong type", func(t *testing.T) {
		token, err := j.GenerateRefreshToken(subject)
		require.NoError(t, err)

		_, err = j.ValidateToken(token, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := New("other", Issuer("GeoApi"), Audience("GeoApiClients")).GenerateAccessToken(subject)
		require.NoError(t, err)

		_, err = j.ValidateToken(token, TokenTypeAccess)
		assert.Error(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		token, err := New("test-secret-key", Issuer("GeoApi"), Audience("someone-else")).GenerateAccessToken(subject)
		require.NoError(t, err)

		_, err = j.ValidateToken(token, TokenTypeAccess)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		past := newTestJWT()
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := past.GenerateAccessToken(subject)
		require.NoError(t, err)

		_, err = j.ValidateToken(token, TokenTypeAccess)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := j.ValidateToken("not.a.token", TokenTypeAccess)
		assert.Error(t, err)
	})
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, ParseDuration("7d"))
	assert.Equal(t, 90*time.Minute, ParseDuration("90m"))
	assert.Equal(t, time.Duration(0), ParseDuration("soon"))
}
