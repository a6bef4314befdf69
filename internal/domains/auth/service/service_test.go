package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/geoapi/internal/domains/auth/dto"
	"github.com/savioruz/geoapi/internal/domains/auth/mock"
	"github.com/savioruz/geoapi/internal/domains/auth/repository"
	usermock "github.com/savioruz/geoapi/internal/domains/user/mock"
	userrepo "github.com/savioruz/geoapi/internal/domains/user/repository"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/helper"
	"github.com/savioruz/geoapi/pkg/jwt"
	log "github.com/savioruz/geoapi/pkg/logger/mock"
	"github.com/savioruz/geoapi/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	ctx       = context.Background()
	mockError = errors.New("error")
)

type deps struct {
	users  *usermock.MockStore
	tokens *mock.MockQuerier
	pgx    pgxmock.PgxPoolIface
	jwt    *jwt.JWT
	logger *log.MockInterface
}

func setup(t *testing.T) (*authService, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)

	d := deps{
		users:  usermock.NewMockStore(ctrl),
		tokens: mock.NewMockQuerier(ctrl),
		pgx:    mockPgx,
		jwt:    jwt.New("test-secret", jwt.Issuer("geoapi"), jwt.Audience("geoapi-clients")),
		logger: log.NewMockInterface(ctrl),
	}

	svc, ok := New(d.pgx, d.users, d.tokens, d.jwt, d.logger).(*authService)
	require.True(t, ok)

	return svc, d
}

func mockUser(t *testing.T, id uuid.UUID, name, plain string) userrepo.User {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return userrepo.User{
		ID:           pgtype.UUID{Bytes: id, Valid: true},
		Username:     name,
		Email:        name + "@geoapi.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: hash,
	}
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		UserName:  "jane",
		Email:     "jane@geoapi.com",
		Password:  "Secret123",
	}

	t.Run("error: email and username taken", func(t *testing.T) {
		svc, d := setup(t)

		d.pgx.ExpectBegin()
		d.pgx.ExpectRollback()
		d.users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), req.Email).Return(userrepo.User{Email: req.Email}, nil)
		d.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), req.UserName).Return(userrepo.User{Username: req.UserName}, nil)

		res := svc.Register(ctx, req)

		require.Len(t, res.Errors(), 2)
		assert.Equal(t, MsgEmailTaken, res.Errors()[0].Message)
		assert.Equal(t, MsgUserNameTaken, res.Errors()[1].Message)
		assert.Equal(t, http.StatusConflict, failure.GetCode(res.Err()))
	})

	t.Run("error: concurrent signup hits unique constraint", func(t *testing.T) {
		svc, d := setup(t)

		d.pgx.ExpectBegin()
		d.pgx.ExpectRollback()
		d.users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(userrepo.User{}, pgx.ErrNoRows)
		d.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), gomock.Any()).Return(userrepo.User{}, pgx.ErrNoRows)
		d.users.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(userrepo.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		res := svc.Register(ctx, req)

		require.Len(t, res.Errors(), 1)
		assert.Equal(t, MsgUserNameTaken, res.Errors()[0].Message)
	})

	t.Run("success: user created with the User role", func(t *testing.T) {
		svc, d := setup(t)

		id := uuid.New()

		d.pgx.ExpectBegin()
		d.pgx.ExpectCommit()
		d.pgx.ExpectRollback()
		d.users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(userrepo.User{}, pgx.ErrNoRows)
		d.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), gomock.Any()).Return(userrepo.User{}, pgx.ErrNoRows)
		d.users.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ userrepo.DBTX, arg userrepo.CreateUserParams) (userrepo.User, error) {
				assert.Equal(t, "jane", arg.Username)
				assert.True(t, password.Check("Secret123", arg.PasswordHash))

				return userrepo.User{ID: pgtype.UUID{Bytes: id, Valid: true}, Username: arg.Username, Email: arg.Email}, nil
			})
		d.users.EXPECT().
			AddUserRole(gomock.Any(), gomock.Any(), userrepo.AddUserRoleParams{UserID: pgtype.UUID{Bytes: id, Valid: true}, Role: "User"}).
			Return(nil)

		res := svc.Register(ctx, req)

		require.True(t, res.IsSuccess())
		assert.Equal(t, "jane", res.Value().UserName)

		claims, err := d.jwt.ValidateToken(res.Value().Token, jwt.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, id.String(), claims.UserID)
		assert.Equal(t, []string{"User"}, claims.Roles)
		assert.NoError(t, d.pgx.ExpectationsWereMet())
	})
}

func TestAuthService_Login(t *testing.T) {
	id := uuid.New()

	t.Run("error: unknown user", func(t *testing.T) {
		svc, d := setup(t)

		d.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), "ghost").Return(userrepo.User{}, pgx.ErrNoRows)

		res := svc.Login(ctx, dto.LoginRequest{UserName: "ghost", Password: "whatever"})

		require.Len(t, res.Errors(), 1)
		assert.Equal(t, MsgInvalidCredentials, res.Errors()[0].Message)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(res.Err()))
	})

	t.Run("error: wrong password has the same message", func(t *testing.T) {
		svc, d := setup(t)

		d.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), "admin").Return(mockUser(t, id, "admin", "Admin123!"), nil)

		res := svc.Login(ctx, dto.LoginRequest{UserName: "admin", Password: "admin123!"})

		require.Len(t, res.Errors(), 1)
		assert.Equal(t, MsgInvalidCredentials, res.Errors()[0].Message)
	})

	t.Run("error: store failure", func(t *testing.T) {
		svc, d := setup(t)

		d.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), gomock.Any()).Return(userrepo.User{}, mockError)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		res := svc.Login(ctx, dto.LoginRequest{UserName: "admin", Password: "Admin123!"})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(res.Err()))
	})

	t.Run("success: tokens carry roles", func(t *testing.T) {
		svc, d := setup(t)

		d.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), "admin").Return(mockUser(t, id, "admin", "Admin123!"), nil)
		d.users.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), pgtype.UUID{Bytes: id, Valid: true}).Return([]string{"Admin", "User"}, nil)

		res := svc.Login(ctx, dto.LoginRequest{UserName: "admin", Password: "Admin123!"})

		require.True(t, res.IsSuccess())
		assert.Equal(t, "admin@geoapi.com", res.Value().Email)

		claims, err := d.jwt.ValidateToken(res.Value().RefreshToken, jwt.TokenTypeRefresh)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.True(t, claims.HasRole("Admin"))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	id := uuid.New()
	subject := jwt.Subject{UserID: id.String(), UserName: "user", Email: "user@geoapi.com", Roles: []string{"User"}}

	t.Run("error: access token presented", func(t *testing.T) {
		svc, d := setup(t)

		token, err := d.jwt.GenerateAccessToken(subject)
		require.NoError(t, err)

		d.logger.EXPECT().Debug(gomock.Any(), gomock.Any())

		res := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: token})

		assert.Equal(t, MsgInvalidRefreshToken, res.Errors()[0].Message)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(res.Err()))
	})

	t.Run("error: already used", func(t *testing.T) {
		svc, d := setup(t)

		token, err := d.jwt.GenerateRefreshToken(subject)
		require.NoError(t, err)

		d.tokens.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		res := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: token})

		assert.Equal(t, MsgInvalidRefreshToken, res.Errors()[0].Message)
	})

	t.Run("success: old token revoked and roles reloaded", func(t *testing.T) {
		svc, d := setup(t)

		token, err := d.jwt.GenerateRefreshToken(subject)
		require.NoError(t, err)

		old, err := d.jwt.ValidateToken(token, jwt.TokenTypeRefresh)
		require.NoError(t, err)

		d.tokens.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), old.ID).Return(false, nil)
		d.users.EXPECT().GetUserById(gomock.Any(), gomock.Any(), pgtype.UUID{Bytes: id, Valid: true}).Return(mockUser(t, id, "user", "User123!"), nil)
		d.users.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"Admin", "User"}, nil)
		d.tokens.EXPECT().
			RevokeToken(gomock.Any(), gomock.Any(), repository.RevokeTokenParams{
				Jti:       old.ID,
				ExpiresAt: helper.PgTimestamp(old.ExpiresAt.Time),
			}).
			Return(nil)

		res := svc.Refresh(ctx, dto.RefreshRequest{RefreshToken: token})

		require.True(t, res.IsSuccess())

		claims, err := d.jwt.ValidateToken(res.Value().Token, jwt.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, []string{"Admin", "User"}, claims.Roles)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("error: store failure", func(t *testing.T) {
		svc, d := setup(t)

		d.tokens.EXPECT().RevokeToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockError)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		res := svc.Logout(ctx, "jti", time.Now())

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(res.Err()))
	})

	t.Run("success: token revoked until expiry", func(t *testing.T) {
		svc, d := setup(t)

		exp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		d.tokens.EXPECT().
			RevokeToken(gomock.Any(), gomock.Any(), repository.RevokeTokenParams{Jti: "jti", ExpiresAt: helper.PgTimestamp(exp)}).
			Return(nil)

		res := svc.Logout(ctx, "jti", exp)

		assert.True(t, res.IsSuccess())
	})
}

func TestAuthService_PurgeExpired(t *testing.T) {
	t.Run("success: deletes entries expired before now", func(t *testing.T) {
		svc, d := setup(t)

		now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }

		d.tokens.EXPECT().PurgeExpiredTokens(gomock.Any(), gomock.Any(), helper.PgTimestamp(now)).Return(int64(3), nil)

		n, err := svc.PurgeExpired(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("error: store failure", func(t *testing.T) {
		svc, d := setup(t)

		d.tokens.EXPECT().PurgeExpiredTokens(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), mockError)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := svc.PurgeExpired(ctx)

		assert.Equal(t, failure.KindFailure, failure.KindOf(err))
	})
}
