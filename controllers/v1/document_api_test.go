package apiv1

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

// поднимает маршруты документов так же, как main: под префиксом /api/v1
func newDocumentTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	rbac.NewHandler()

	app := fiber.New()
	apiV1 := fiber.New()
	app.Mount("/api/v1", apiV1)
	InitDocumentApiRouters(apiV1)
	return app
}

func TestDocumentApiAccess(t *testing.T) {
	t.Run(`без токена возвращается 401`, func(t *testing.T) {
		app := newDocumentTestApp(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`загрузка недоступна роли без права на файлы`, func(t *testing.T) {
		app := newDocumentTestApp(t)

		token, err := authutils.GetToken("123-321", "user@example.com", "Иван Иванов", models.EmployeeRole)
		require.Nil(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
