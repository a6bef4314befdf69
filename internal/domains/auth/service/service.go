package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/geoapi/internal/domains/auth/dto"
	"github.com/savioruz/geoapi/internal/domains/auth/repository"
	userrepo "github.com/savioruz/geoapi/internal/domains/user/repository"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/helper"
	"github.com/savioruz/geoapi/pkg/jwt"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/password"
	"github.com/savioruz/geoapi/pkg/postgres"
	"github.com/savioruz/geoapi/pkg/result"
)

const (
	MsgEmailTaken          = "User with this email already exists."
	MsgUserNameTaken       = "User with this username already exists."
	MsgInvalidCredentials  = "Invalid username or password."
	MsgInvalidRefreshToken = "Invalid refresh token."
)

var registerErrors = postgres.Classification{
	Constraints: map[string]string{
		"users_email_key":    MsgEmailTaken,
		"users_username_key": MsgUserNameTaken,
	},
}

//go:generate mockgen -destination=../mock/service.go -package=mock github.com/savioruz/geoapi/internal/domains/auth/service AuthService

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) result.Result[dto.AuthResponse]
	Login(ctx context.Context, req dto.LoginRequest) result.Result[dto.AuthResponse]
	Refresh(ctx context.Context, req dto.RefreshRequest) result.Result[dto.AuthResponse]
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) result.Result[result.Unit]
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type authService struct {
	db     postgres.PgxIface
	users  userrepo.Querier
	tokens repository.Querier
	jwt    *jwt.JWT
	logger logger.Interface
	now    func() time.Time
}

func New(db postgres.PgxIface, u userrepo.Querier, t repository.Querier, j *jwt.JWT, l logger.Interface) AuthService {
	return &authService{
		db:     db,
		users:  u,
		tokens: t,
		jwt:    j,
		logger: l,
		now:    time.Now,
	}
}

// Register creates a user with the User role and signs it in.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) result.Result[dto.AuthResponse] {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - auth - register - failed to begin transaction: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("service - auth - register - failed to rollback transaction: %v", err)
		}
	}()

	var conflicts []error

	if _, err = s.users.GetUserByEmail(ctx, tx, req.Email); err == nil {
		conflicts = append(conflicts, failure.Conflict(MsgEmailTaken))
	} else if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("service - auth - register - failed to get user by email: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	if _, err = s.users.GetUserByUsername(ctx, tx, req.UserName); err == nil {
		conflicts = append(conflicts, failure.Conflict(MsgUserNameTaken))
	} else if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("service - auth - register - failed to get user by username: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	if len(conflicts) > 0 {
		return result.Fail[dto.AuthResponse](failure.Join(conflicts...))
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		s.logger.Error("service - auth - register - failed to hash password: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	user, err := s.users.CreateUser(ctx, tx, userrepo.CreateUserParams{
		Username:     req.UserName,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	})
	if err != nil {
		err = postgres.Classify(err, registerErrors)
		if failure.KindOf(err) != failure.KindConflict {
			s.logger.Error("service - auth - register - failed to create user: %v", err)
		}

		return result.Fail[dto.AuthResponse](err)
	}

	if err = s.users.AddUserRole(ctx, tx, userrepo.AddUserRoleParams{UserID: user.ID, Role: constant.RoleUser}); err != nil {
		s.logger.Error("service - auth - register - failed to add role: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("service - auth - register - failed to commit transaction: %v", err)

		return result.Fail[dto.AuthResponse](postgres.Classify(err, registerErrors))
	}

	return s.issue(user, []string{constant.RoleUser}, "register")
}

// Login answers unknown users and wrong passwords with the same error.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) result.Result[dto.AuthResponse] {
	user, err := s.users.GetUserByUsername(ctx, s.db, req.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[dto.AuthResponse](failure.Unauthorized(MsgInvalidCredentials))
		}

		s.logger.Error("service - auth - login - failed to get user by username: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	if !password.Check(req.Password, user.PasswordHash) {
		return result.Fail[dto.AuthResponse](failure.Unauthorized(MsgInvalidCredentials))
	}

	roles, err := s.users.GetUserRoles(ctx, s.db, user.ID)
	if err != nil {
		s.logger.Error("service - auth - login - failed to get user roles: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	return s.issue(user, roles, "login")
}

// Refresh exchanges a refresh token for a new pair and revokes the one presented.
// Roles are reloaded so role changes apply from the next refresh.
func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) result.Result[dto.AuthResponse] {
	claims, err := s.jwt.ValidateToken(req.RefreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		s.logger.Debug("service - auth - refresh - rejected token: %v", err)

		return result.Fail[dto.AuthResponse](failure.Unauthorized(MsgInvalidRefreshToken))
	}

	revoked, err := s.IsRevoked(ctx, claims.ID)
	if err != nil {
		return result.Fail[dto.AuthResponse](err)
	}

	if revoked {
		return result.Fail[dto.AuthResponse](failure.Unauthorized(MsgInvalidRefreshToken))
	}

	userID := helper.PgUUID(claims.UserID)

	user, err := s.users.GetUserById(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[dto.AuthResponse](failure.Unauthorized(MsgInvalidRefreshToken))
		}

		s.logger.Error("service - auth - refresh - failed to get user by id: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	roles, err := s.users.GetUserRoles(ctx, s.db, userID)
	if err != nil {
		s.logger.Error("service - auth - refresh - failed to get user roles: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	expiresAt := s.now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err = s.revoke(ctx, claims.ID, expiresAt); err != nil {
		s.logger.Error("service - auth - refresh - failed to revoke token: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	return s.issue(user, roles, "refresh")
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) result.Result[result.Unit] {
	if err := s.revoke(ctx, tokenID, expiresAt); err != nil {
		s.logger.Error("service - auth - logout - failed to revoke token: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}

	return result.Ok(result.Unit{})
}

func (s *authService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := s.tokens.IsTokenRevoked(ctx, s.db, tokenID)
	if err != nil {
		s.logger.Error("service - auth - is revoked - failed to check token: %v", err)

		return false, failure.InternalError(err)
	}

	return revoked, nil
}

// PurgeExpired deletes revocations whose token has expired anyway.
func (s *authService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.tokens.PurgeExpiredTokens(ctx, s.db, helper.PgTimestamp(s.now()))
	if err != nil {
		s.logger.Error("service - auth - purge expired - failed to purge tokens: %v", err)

		return 0, failure.InternalError(err)
	}

	return n, nil
}

func (s *authService) revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.tokens.RevokeToken(ctx, s.db, repository.RevokeTokenParams{
		Jti:       tokenID,
		ExpiresAt: helper.PgTimestamp(expiresAt),
	})
}

func (s *authService) issue(user userrepo.User, roles []string, op string) result.Result[dto.AuthResponse] {
	subject := jwt.Subject{
		UserID:   user.ID.String(),
		UserName: user.Username,
		Email:    user.Email,
		Roles:    roles,
	}

	token, err := s.jwt.GenerateAccessToken(subject)
	if err != nil {
		s.logger.Error("service - auth - "+op+" - failed to generate access token: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	refresh, err := s.jwt.GenerateRefreshToken(subject)
	if err != nil {
		s.logger.Error("service - auth - "+op+" - failed to generate refresh token: %v", err)

		return result.Fail[dto.AuthResponse](failure.InternalError(err))
	}

	return result.Ok(dto.AuthResponse{
		Email:        user.Email,
		UserName:     user.Username,
		Token:        token,
		RefreshToken: refresh,
	})
}
