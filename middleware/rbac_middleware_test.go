package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"company-portal-backend/config"
	"company-portal-backend/lib/rbac"
	authutils "company-portal-backend/lib/utils/auth-utils"
	"company-portal-backend/models"
)

func newTestApp(t *testing.T, handlerCalls *int) *fiber.App {
	t.Helper()
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	rbac.NewHandler()

	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Use(RbacMiddleware())
	app.Get("/api/v1/employees", func(ctx *fiber.Ctx) error {
		*handlerCalls++
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func newAuthRequest(t *testing.T, role models.UserRole) *http.Request {
	t.Helper()
	token, err := authutils.GetToken("123-321", "user@example.com", "Иван Иванов", role)
	require.Nil(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return req
}

func TestRbacMiddleware(t *testing.T) {
	t.Run(`без токена возвращается 401`, func(t *testing.T) {
		handlerCalls := 0
		app := newTestApp(t, &handlerCalls)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, 0, handlerCalls)
	})

	t.Run(`роль без права получает 403 до вызова сервиса`, func(t *testing.T) {
		handlerCalls := 0
		app := newTestApp(t, &handlerCalls)

		resp, err := app.Test(newAuthRequest(t, models.EmployeeRole))
		require.Nil(t, err)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, 0, handlerCalls)
	})

	t.Run(`роль с правом проходит`, func(t *testing.T) {
		handlerCalls := 0
		app := newTestApp(t, &handlerCalls)

		resp, err := app.Test(newAuthRequest(t, models.HRRole))
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, 1, handlerCalls)
	})
}
