package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"company-portal-backend/controllers"
	employeehandler "company-portal-backend/lib/employee"
	xlsexport "company-portal-backend/lib/export/xls"
	"company-portal-backend/middleware"
	apimodels "company-portal-backend/models/api"
	employeeapimodels "company-portal-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	list, err := employeehandler.Instance.GetList()
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавить сотрудника
// @Tags Сотрудники
// @Description Добавить сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Success 201 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := employeehandler.Instance.Create(payload)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Обновить сотрудника
// @Tags Сотрудники
// @Description Обновить сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"employee ID"
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := employeehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Удалить сотрудника
// @Tags Сотрудники
// @Description Удалить сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"employee ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = employeehandler.Instance.Delete(id); err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("сотрудник удален"))
}

// @Summary Экспорт списка сотрудников в xlsx
// @Tags Сотрудники
// @Description Экспорт списка сотрудников в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/export [get]
func (c *employeeApiController) export(ctx *fiber.Ctx) error {
	list, err := employeehandler.Instance.GetRecList()
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportEmployeeList(list)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="employees.xlsx"`)
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}
