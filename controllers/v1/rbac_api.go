package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"company-portal-backend/controllers"
	"company-portal-backend/lib/rbac"
	"company-portal-backend/middleware"
	apimodels "company-portal-backend/models/api"
)

type rbacApiController struct {
	controllers.BaseAPIController
}

func InitRbacApiRouters(app *fiber.App) {
	controller := rbacApiController{}
	app.Route("rbac", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("permissions", controller.permissions)
	})
}

// @Summary Права текущего пользователя
// @Tags Права
// @Description Карта модулей и разрешений роли, используется фронтом для построения меню
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/rbac/permissions [get]
func (c *rbacApiController) permissions(ctx *fiber.Ctx) error {
	role := middleware.GetUserRole(ctx)
	if role == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rbac.Instance.GetPermissions(role)))
}
