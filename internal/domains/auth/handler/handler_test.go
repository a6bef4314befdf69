package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/internal/delivery/http/response"
	"github.com/savioruz/geoapi/internal/domains/auth/dto"
	"github.com/savioruz/geoapi/internal/domains/auth/mock"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	log "github.com/savioruz/geoapi/pkg/logger/mock"
	"github.com/savioruz/geoapi/pkg/result"
	"github.com/savioruz/geoapi/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var expiry = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newApp(t *testing.T) (*fiber.App, *mock.MockAuthService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mock.NewMockAuthService(ctrl)
	l := log.NewMockInterface(ctrl)
	l.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	h := New(svc, nil, l, validation.New())

	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	app.Post("/api/v1/auth/register", h.Register)
	app.Post("/api/v1/auth/login", h.Login)
	app.Post("/api/v1/auth/refresh", h.Refresh)
	app.Post("/api/v1/auth/logout", func(ctx *fiber.Ctx) error {
		if ctx.Get("X-Test-Jti") != "" {
			ctx.Locals(constant.JwtFieldTokenID, ctx.Get("X-Test-Jti"))
			ctx.Locals(constant.JwtFieldExpiry, expiry)
		}

		return ctx.Next()
	}, h.Logout)

	return app, svc
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()

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

func post(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return req
}

func TestHandler_Register(t *testing.T) {
	t.Run("error: field and password policy violations together", func(t *testing.T) {
		app, _ := newApp(t)

		res, body := do(t, app, post("/api/v1/auth/register",
			`{"firstName":"","lastName":"Doe","userName":"jane","email":"not-an-email","password":"password"}`))

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		errs := body["errors"].(map[string]any)
		assert.Contains(t, errs, "FirstName")
		assert.Contains(t, errs, "Email")
		assert.Equal(t, []any{"Password must contain one uppercase letter.", "Password must contain one number."}, errs["Password"])
	})

	t.Run("error: conflict", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(result.Fail[dto.AuthResponse](failure.Conflict("User with this email already exists.")))

		res, body := do(t, app, post("/api/v1/auth/register",
			`{"firstName":"Jane","lastName":"Doe","userName":"jane","email":"jane@geoapi.com","password":"Secret123"}`))

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Equal(t, "User with this email already exists.", body["detail"])
	})

	t.Run("success: token pair", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().
			Register(gomock.Any(), dto.RegisterRequest{
				FirstName: "Jane", LastName: "Doe", UserName: "jane", Email: "jane@geoapi.com", Password: "Secret123",
			}).
			Return(result.Ok(dto.AuthResponse{Email: "jane@geoapi.com", UserName: "jane", Token: "a", RefreshToken: "r"}))

		res, body := do(t, app, post("/api/v1/auth/register",
			`{"firstName":"Jane","lastName":"Doe","userName":"jane","email":"jane@geoapi.com","password":"Secret123"}`))

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "a", body["token"])
		assert.Equal(t, "r", body["refreshToken"])
	})
}

func TestHandler_Login(t *testing.T) {
	t.Run("error: bad credentials", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{UserName: "admin", Password: "nope"}).
			Return(result.Fail[dto.AuthResponse](failure.Unauthorized("Invalid username or password.")))

		res, body := do(t, app, post("/api/v1/auth/login", `{"userName":"admin","password":"nope"}`))

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "Invalid username or password.", body["detail"])
	})

	t.Run("error: missing fields", func(t *testing.T) {
		app, _ := newApp(t)

		res, body := do(t, app, post("/api/v1/auth/login", `{}`))

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Len(t, body["errors"], 2)
	})
}

func TestHandler_Refresh(t *testing.T) {
	t.Run("success: new pair", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().Refresh(gomock.Any(), dto.RefreshRequest{RefreshToken: "r"}).
			Return(result.Ok(dto.AuthResponse{Token: "a2", RefreshToken: "r2"}))

		res, body := do(t, app, post("/api/v1/auth/refresh", `{"refreshToken":"r"}`))

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "r2", body["refreshToken"])
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Run("error: no token claims", func(t *testing.T) {
		app, _ := newApp(t)

		res, _ := do(t, app, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("success: current token revoked", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().Logout(gomock.Any(), "jti-1", expiry).Return(result.Ok(result.Unit{}))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.Header.Set("X-Test-Jti", "jti-1")

		res, _ := do(t, app, req)

		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})
}
