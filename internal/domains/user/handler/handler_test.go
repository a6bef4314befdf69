package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	"github.com/savioruz/geoapi/internal/domains/user/dto"
	"github.com/savioruz/geoapi/internal/domains/user/mock"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/gdto"
	log "github.com/savioruz/geoapi/pkg/logger/mock"
	"github.com/savioruz/geoapi/pkg/result"
	"github.com/savioruz/geoapi/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, userID string) (*fiber.App, *mock.MockUserService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mock.NewMockUserService(ctrl)
	l := log.NewMockInterface(ctrl)
	l.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	h := New(svc, nil, l, validation.New())

	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	app.Use(func(ctx *fiber.Ctx) error {
		if userID != "" {
			ctx.Locals(constant.JwtFieldUser, userID)
		}

		return ctx.Next()
	})
	app.Get("/api/v1/users/me", h.Profile)
	app.Get("/api/v1/users", h.GetAll)
	app.Get("/api/v1/users/:id", h.GetByID)
	app.Put("/api/v1/users/:id/roles", h.UpdateRoles)

	return app, svc
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	res, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}

	return res, out
}

func TestHandler_Profile(t *testing.T) {
	t.Run("error: no user claim", func(t *testing.T) {
		app, _ := newApp(t, "")

		res, body := do(t, app, http.MethodGet, "/api/v1/users/me", "")

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "Unauthorized", body["title"])
	})

	t.Run("success: own profile", func(t *testing.T) {
		id := uuid.NewString()
		app, svc := newApp(t, id)

		svc.EXPECT().Profile(gomock.Any(), id).
			Return(result.Ok(dto.UserResponse{ID: id, UserName: "user", Roles: []string{"User"}}))

		res, body := do(t, app, http.MethodGet, "/api/v1/users/me", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "user", body["userName"])
		assert.Equal(t, []any{"User"}, body["roles"])
	})
}

func TestHandler_GetAll(t *testing.T) {
	t.Run("error: sort column not allowed", func(t *testing.T) {
		app, _ := newApp(t, "")

		res, body := do(t, app, http.MethodGet, "/api/v1/users?sortColumn=password", "")

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		errs := body["errors"].(map[string]any)
		assert.Equal(t, []any{"SortColumn must be one of: Id, UserName, Email"}, errs["SortColumn"])
	})

	t.Run("success: filters forwarded", func(t *testing.T) {
		app, svc := newApp(t, "")

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.GetUsersRequest) result.Result[gdto.PagedList[dto.UserResponse]] {
				assert.Equal(t, "adm", req.UserName)

				return result.Ok(gdto.NewPagedList([]dto.UserResponse{}, req.Normalize(gdto.Users), 0))
			})

		res, body := do(t, app, http.MethodGet, "/api/v1/users?userName=adm", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, []any{}, body["items"])
	})
}

func TestHandler_ByID(t *testing.T) {
	t.Run("error: malformed id", func(t *testing.T) {
		app, _ := newApp(t, "")

		res, body := do(t, app, http.MethodGet, "/api/v1/users/42", "")

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, errInvalidID, body["detail"])
	})

	t.Run("error: not found", func(t *testing.T) {
		app, svc := newApp(t, "")

		id := uuid.NewString()
		svc.EXPECT().GetByID(gomock.Any(), id).Return(result.Fail[dto.UserResponse](failure.NotFound("User not found.")))

		res, body := do(t, app, http.MethodGet, "/api/v1/users/"+id, "")

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "User not found.", body["detail"])
	})

	t.Run("error: unknown role", func(t *testing.T) {
		app, _ := newApp(t, "")

		res, body := do(t, app, http.MethodPut, "/api/v1/users/"+uuid.NewString()+"/roles", `{"roles":["Root"]}`)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, response.TitleValidation, body["title"])
	})

	t.Run("success: roles replaced", func(t *testing.T) {
		app, svc := newApp(t, "")

		id := uuid.NewString()
		svc.EXPECT().
			UpdateRoles(gomock.Any(), id, dto.UpdateUserRolesRequest{Roles: []string{"Admin", "User"}}).
			Return(result.Ok(result.Unit{}))

		res, _ := do(t, app, http.MethodPut, "/api/v1/users/"+id+"/roles", `{"roles":["Admin","User"]}`)

		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})
}
