package service

import (
	"context"
	"errors"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/internal/domains/user/dto"
	"github.com/savioruz/geoapi/internal/domains/user/repository"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/helper"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/postgres"
	"github.com/savioruz/geoapi/pkg/query"
	"github.com/savioruz/geoapi/pkg/redis"
	"github.com/savioruz/geoapi/pkg/result"
)

const MsgNotFound = "User not found."

//go:generate mockgen -destination=../mock/service.go -package=mock github.com/savioruz/geoapi/internal/domains/user/service UserService

type UserService interface {
	Profile(ctx context.Context, userID string) result.Result[dto.UserResponse]
	GetAll(ctx context.Context, req dto.GetUsersRequest) result.Result[gdto.PagedList[dto.UserResponse]]
	GetByID(ctx context.Context, id string) result.Result[dto.UserResponse]
	UpdateRoles(ctx context.Context, id string, req dto.UpdateUserRolesRequest) result.Result[result.Unit]
}

type userService struct {
	db     postgres.PgxIface
	repo   repository.Store
	cache  redis.Cache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Store, cache redis.Cache, cfg *config.Config, l logger.Interface) UserService {
	return &userService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

func userKey(id string) string {
	return helper.BuildCacheKey(constant.CacheKeyUser, id)
}

func (s *userService) Profile(ctx context.Context, userID string) result.Result[dto.UserResponse] {
	return s.load(ctx, userID, "profile")
}

func (s *userService) GetByID(ctx context.Context, id string) result.Result[dto.UserResponse] {
	return s.load(ctx, id, "get by id")
}

func (s *userService) load(ctx context.Context, id, op string) result.Result[dto.UserResponse] {
	cacheKey := userKey(id)

	var cacheRes dto.UserResponse
	if err := s.cache.Get(ctx, cacheKey, &cacheRes); err == nil {
		s.logger.Debug("service - user - "+op+" - user %s - cache hit", id)

		return result.Ok(cacheRes)
	} else if !redis.IsMiss(err) {
		s.logger.Warn("service - user - "+op+" - failed to read cache: %v", err)
	}

	userID := helper.PgUUID(id)

	user, err := s.repo.GetUserById(ctx, s.db, userID)
	if err != nil {
		err = postgres.Classify(err, postgres.Classification{NotFound: MsgNotFound})
		if failure.KindOf(err) != failure.KindNotFound {
			s.logger.Error("service - user - "+op+" - failed to get user by id: %v", err)
		}

		return result.Fail[dto.UserResponse](err)
	}

	roles, err := s.repo.GetUserRoles(ctx, s.db, userID)
	if err != nil {
		s.logger.Error("service - user - "+op+" - failed to get user roles: %v", err)

		return result.Fail[dto.UserResponse](failure.InternalError(err))
	}

	res := dto.UserResponse{}.FromModel(user, roles)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration); err != nil {
		s.logger.Error("service - user - "+op+" - failed to set cache: %v", err)
	}

	return result.Ok(res)
}

func (s *userService) GetAll(ctx context.Context, req dto.GetUsersRequest) result.Result[gdto.PagedList[dto.UserResponse]] {
	paging := req.PagedRequest.Normalize(gdto.Users)

	spec := query.New().
		Contains(repository.FieldUserName, req.UserName).
		Contains(repository.FieldEmail, req.Email)

	users, total, err := s.repo.ListUsers(ctx, s.db, spec, paging)
	if err != nil {
		s.logger.Error("service - user - get all - failed to list users: %v", err)

		return result.Fail[gdto.PagedList[dto.UserResponse]](failure.InternalError(err))
	}

	roles := make(map[string][]string, len(users))

	if len(users) > 0 {
		ids := make([]pgtype.UUID, len(users))
		for i, u := range users {
			ids[i] = u.ID
		}

		rows, err := s.repo.GetRolesByUserIds(ctx, s.db, ids)
		if err != nil {
			s.logger.Error("service - user - get all - failed to get roles: %v", err)

			return result.Fail[gdto.PagedList[dto.UserResponse]](failure.InternalError(err))
		}

		for _, row := range rows {
			key := row.UserID.String()
			roles[key] = append(roles[key], row.Role)
		}
	}

	return result.Ok(gdto.NewPagedList(dto.FromModels(users, roles), paging, int(total)))
}

// UpdateRoles replaces the roles of a user. Tokens already issued keep their roles until they expire.
func (s *userService) UpdateRoles(ctx context.Context, id string, req dto.UpdateUserRolesRequest) result.Result[result.Unit] {
	userID := helper.PgUUID(id)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - user - update roles - failed to begin transaction: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("service - user - update roles - failed to rollback transaction: %v", err)
		}
	}()

	if _, err = s.repo.GetUserById(ctx, tx, userID); err != nil {
		err = postgres.Classify(err, postgres.Classification{NotFound: MsgNotFound})
		if failure.KindOf(err) != failure.KindNotFound {
			s.logger.Error("service - user - update roles - failed to get user by id: %v", err)
		}

		return result.Fail[result.Unit](err)
	}

	if err = s.repo.RemoveUserRoles(ctx, tx, userID); err != nil {
		s.logger.Error("service - user - update roles - failed to remove roles: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}

	roles := slices.Clone(req.Roles)
	slices.Sort(roles)

	for _, role := range slices.Compact(roles) {
		if err = s.repo.AddUserRole(ctx, tx, repository.AddUserRoleParams{UserID: userID, Role: role}); err != nil {
			s.logger.Error("service - user - update roles - failed to add role: %v", err)

			return result.Fail[result.Unit](failure.InternalError(err))
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("service - user - update roles - failed to commit transaction: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}

	if err = s.cache.Delete(ctx, userKey(id)); err != nil {
		s.logger.Error("service - user - update roles - failed to delete cache: %v", err)
	}

	return result.Ok(result.Unit{})
}
