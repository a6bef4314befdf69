package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/internal/domains/user/dto"
	"github.com/savioruz/geoapi/internal/domains/user/mock"
	"github.com/savioruz/geoapi/internal/domains/user/repository"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/gdto"
	log "github.com/savioruz/geoapi/pkg/logger/mock"
	"github.com/savioruz/geoapi/pkg/redis"
	cache "github.com/savioruz/geoapi/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	ctx       = context.Background()
	mockError = errors.New("error")
	cfg       = &config.Config{Cache: config.Cache{Duration: 300}}
)

type deps struct {
	store  *mock.MockStore
	pgx    pgxmock.PgxPoolIface
	cache  *cache.MockCache
	logger *log.MockInterface
}

func setup(t *testing.T) (UserService, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockPgx, err := pgxmock.NewPool()
	require.NoError(t, err)

	d := deps{
		store:  mock.NewMockStore(ctrl),
		pgx:    mockPgx,
		cache:  cache.NewMockCache(ctrl),
		logger: log.NewMockInterface(ctrl),
	}

	return New(d.pgx, d.store, d.cache, cfg, d.logger), d
}

func pgID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func mockUser(id uuid.UUID, name string) repository.User {
	return repository.User{
		ID:           pgID(id),
		Username:     name,
		Email:        name + "@geoapi.com",
		FirstName:    "Regular",
		LastName:     "User",
		PasswordHash: "hash",
	}
}

func TestUserService_Profile(t *testing.T) {
	id := uuid.New()

	t.Run("success: cache hit", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), userKey(id.String()), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, v any) error {
				*(v.(*dto.UserResponse)) = dto.UserResponse{ID: id.String(), UserName: "user"}

				return nil
			})
		d.logger.EXPECT().Debug(gomock.Any(), gomock.Any())

		res := svc.Profile(ctx, id.String())

		require.True(t, res.IsSuccess())
		assert.Equal(t, "user", res.Value().UserName)
	})

	t.Run("error: user gone", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.ErrCacheMiss)
		d.store.EXPECT().GetUserById(gomock.Any(), gomock.Any(), pgID(id)).Return(repository.User{}, pgx.ErrNoRows)

		res := svc.Profile(ctx, id.String())

		require.Len(t, res.Errors(), 1)
		assert.Equal(t, MsgNotFound, res.Errors()[0].Message)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(res.Err()))
	})

	t.Run("error: roles query fails", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.ErrCacheMiss)
		d.store.EXPECT().GetUserById(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockUser(id, "user"), nil)
		d.store.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), pgID(id)).Return(nil, mockError)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		res := svc.Profile(ctx, id.String())

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(res.Err()))
	})

	t.Run("success: loaded with roles and cached", func(t *testing.T) {
		svc, d := setup(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.ErrCacheMiss)
		d.store.EXPECT().GetUserById(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockUser(id, "user"), nil)
		d.store.EXPECT().GetUserRoles(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"User"}, nil)
		d.cache.EXPECT().Save(gomock.Any(), userKey(id.String()), gomock.Any(), 300).Return(mockError)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		res := svc.Profile(ctx, id.String())

		require.True(t, res.IsSuccess())
		assert.Equal(t, dto.UserResponse{
			ID:        id.String(),
			UserName:  "user",
			Email:     "user@geoapi.com",
			FirstName: "Regular",
			LastName:  "User",
			Roles:     []string{"User"},
		}, res.Value())
	})
}

func TestUserService_GetAll(t *testing.T) {
	t.Run("error: list fails", func(t *testing.T) {
		svc, d := setup(t)

		d.store.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), mockError)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		res := svc.GetAll(ctx, dto.GetUsersRequest{})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(res.Err()))
	})

	t.Run("success: empty page skips roles", func(t *testing.T) {
		svc, d := setup(t)

		d.store.EXPECT().
			ListUsers(gomock.Any(), gomock.Any(), gomock.Any(), gdto.Paging{Page: 1, PageSize: 10, SortColumn: "UserName", SortOrder: gdto.SortAsc}).
			Return([]repository.User{}, int64(0), nil)

		res := svc.GetAll(ctx, dto.GetUsersRequest{})

		require.True(t, res.IsSuccess())
		assert.NotNil(t, res.Value().Items)
		assert.Empty(t, res.Value().Items)
	})

	t.Run("success: roles attached per user", func(t *testing.T) {
		svc, d := setup(t)

		admin, user := uuid.New(), uuid.New()

		d.store.EXPECT().
			ListUsers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]repository.User{mockUser(admin, "admin"), mockUser(user, "user")}, int64(2), nil)
		d.store.EXPECT().
			GetRolesByUserIds(gomock.Any(), gomock.Any(), []pgtype.UUID{pgID(admin), pgID(user)}).
			Return([]repository.GetRolesByUserIdsRow{
				{UserID: pgID(admin), Role: "Admin"},
				{UserID: pgID(admin), Role: "User"},
				{UserID: pgID(user), Role: "User"},
			}, nil)

		res := svc.GetAll(ctx, dto.GetUsersRequest{UserName: "a"})

		require.True(t, res.IsSuccess())
		require.Len(t, res.Value().Items, 2)
		assert.Equal(t, []string{"Admin", "User"}, res.Value().Items[0].Roles)
		assert.Equal(t, []string{"User"}, res.Value().Items[1].Roles)
		assert.Equal(t, 2, res.Value().TotalCount)
	})
}

func TestUserService_UpdateRoles(t *testing.T) {
	id := uuid.New()

	t.Run("error: user not found", func(t *testing.T) {
		svc, d := setup(t)

		d.pgx.ExpectBegin()
		d.pgx.ExpectRollback()
		d.store.EXPECT().GetUserById(gomock.Any(), gomock.Any(), pgID(id)).Return(repository.User{}, pgx.ErrNoRows)

		res := svc.UpdateRoles(ctx, id.String(), dto.UpdateUserRolesRequest{Roles: []string{"Admin"}})

		assert.Equal(t, MsgNotFound, res.Errors()[0].Message)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(res.Err()))
	})

	t.Run("error: begin fails", func(t *testing.T) {
		svc, d := setup(t)

		d.pgx.ExpectBegin().WillReturnError(mockError)
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		res := svc.UpdateRoles(ctx, id.String(), dto.UpdateUserRolesRequest{Roles: []string{"Admin"}})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(res.Err()))
	})

	t.Run("success: roles replaced once each", func(t *testing.T) {
		svc, d := setup(t)

		d.pgx.ExpectBegin()
		d.pgx.ExpectCommit()
		d.pgx.ExpectRollback()
		d.store.EXPECT().GetUserById(gomock.Any(), gomock.Any(), gomock.Any()).Return(mockUser(id, "user"), nil)
		d.store.EXPECT().RemoveUserRoles(gomock.Any(), gomock.Any(), pgID(id)).Return(nil)
		d.store.EXPECT().AddUserRole(gomock.Any(), gomock.Any(), repository.AddUserRoleParams{UserID: pgID(id), Role: "Admin"}).Return(nil)
		d.store.EXPECT().AddUserRole(gomock.Any(), gomock.Any(), repository.AddUserRoleParams{UserID: pgID(id), Role: "User"}).Return(nil)
		d.cache.EXPECT().Delete(gomock.Any(), userKey(id.String())).Return(nil)

		res := svc.UpdateRoles(ctx, id.String(), dto.UpdateUserRolesRequest{Roles: []string{"User", "Admin", "User"}})

		require.True(t, res.IsSuccess())
		assert.NoError(t, d.pgx.ExpectationsWereMet())
	})
}
