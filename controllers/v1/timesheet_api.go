package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"company-portal-backend/controllers"
	xlsexport "company-portal-backend/lib/export/xls"
	timesheethandler "company-portal-backend/lib/timesheet"
	"company-portal-backend/middleware"
	apimodels "company-portal-backend/models/api"
	timesheetapimodels "company-portal-backend/models/api/timesheet"
)

type timesheetApiController struct {
	controllers.BaseAPIController
}

func InitTimesheetApiRouters(app *fiber.App) {
	controller := timesheetApiController{}
	app.Route("timesheets", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Patch("status", controller.setStatus)
		})
	})
}

// @Summary Список табелей
// @Tags Табели
// @Description Список табелей с именами сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]timesheetapimodels.TimesheetView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets [get]
func (c *timesheetApiController) list(ctx *fiber.Ctx) error {
	list, err := timesheethandler.Instance.GetList()
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавить табель
// @Tags Табели
// @Description Добавить табель, часы вычисляются на сервере
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		timesheetapimodels.TimesheetData	true	"request body"
// @Success 201 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets [post]
func (c *timesheetApiController) create(ctx *fiber.Ctx) error {
	var payload timesheetapimodels.TimesheetData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := timesheethandler.Instance.Create(payload)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Обновить табель
// @Tags Табели
// @Description Обновить табель, часы пересчитываются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"timesheet ID"
// @Param	body				body		timesheetapimodels.TimesheetData	true	"request body"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id} [put]
func (c *timesheetApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.TimesheetData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := timesheethandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Сменить статус табеля
// @Tags Табели
// @Description Сменить статус табеля (Draft/Submitted/Approved/Rejected)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"timesheet ID"
// @Param	body				body		timesheetapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=timesheetapimodels.TimesheetView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/{id}/status [patch]
func (c *timesheetApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload timesheetapimodels.StatusChangeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := timesheethandler.Instance.SetStatus(id, payload.Status)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Экспорт табелей в xlsx
// @Tags Табели
// @Description Экспорт табелей в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/timesheets/export [get]
func (c *timesheetApiController) export(ctx *fiber.Ctx) error {
	list, err := timesheethandler.Instance.GetRecList()
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportTimesheetList(list)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="timesheets.xlsx"`)
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}
