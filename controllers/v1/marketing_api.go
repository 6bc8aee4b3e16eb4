package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"company-portal-backend/controllers"
	marketinghandler "company-portal-backend/lib/marketing"
	"company-portal-backend/middleware"
	apimodels "company-portal-backend/models/api"
	marketingapimodels "company-portal-backend/models/api/marketing"
)

type marketingApiController struct {
	controllers.BaseAPIController
}

func InitMarketingApiRouters(app *fiber.App) {
	controller := marketingApiController{}
	app.Route("marketing", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Route("candidates", func(candidatesRoute fiber.Router) {
			candidatesRoute.Get("", controller.list)
			candidatesRoute.Post("", controller.create)
			candidatesRoute.Put(":id", controller.update)
		})
	})
}

// @Summary Список кандидатов
// @Tags Маркетинг
// @Description Список кандидатов маркетингового отдела
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]marketingapimodels.CandidateView}
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/marketing/candidates [get]
func (c *marketingApiController) list(ctx *fiber.Ctx) error {
	list, err := marketinghandler.Instance.GetList()
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавить кандидата
// @Tags Маркетинг
// @Description Добавить кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		marketingapimodels.CandidateData	true	"request body"
// @Success 201 {object} apimodels.Response{data=marketingapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/marketing/candidates [post]
func (c *marketingApiController) create(ctx *fiber.Ctx) error {
	var payload marketingapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := marketinghandler.Instance.Create(payload)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Обновить кандидата
// @Tags Маркетинг
// @Description Обновить кандидата, дата контакта проставляется сервером
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"candidate ID"
// @Param	body				body		marketingapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=marketingapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/marketing/candidates/{id} [put]
func (c *marketingApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload marketingapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := marketinghandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
