package apiv1

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"company-portal-backend/controllers"
	documenthandler "company-portal-backend/lib/document"
	"company-portal-backend/middleware"
	apimodels "company-portal-backend/models/api"
)

type documentApiController struct {
	controllers.BaseAPIController
}

func InitDocumentApiRouters(app *fiber.App) {
	controller := documentApiController{}
	app.Route("documents", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("", controller.list)
		router.Post("", controller.upload)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("download", controller.download)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список документов
// @Tags Документы
// @Description Список документов с метаданными
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]docapimodels.DocumentView}
// @Failure 401 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents [get]
func (c *documentApiController) list(ctx *fiber.Ctx) error {
	list, err := documenthandler.Instance.GetList()
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Загрузить документ
// @Tags Документы
// @Description Загрузить документ, multipart форма с полями file, category, tags
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"файл документа"
// @Param   category			formData	string	false	"категория"
// @Param   tags				formData	string	false	"теги через запятую"
// @Success 201 {object} apimodels.Response{data=docapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents [post]
func (c *documentApiController) upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан файл для загрузки"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл из запроса"))
	}
	defer file.Close()

	var tags []string
	if rawTags := strings.TrimSpace(ctx.FormValue("tags")); rawTags != "" {
		for _, tag := range strings.Split(rawTags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	info := documenthandler.UploadInfo{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Category:    ctx.FormValue("category"),
		Tags:        tags,
		UploadedBy:  middleware.GetUserEmail(ctx),
		Size:        fileHeader.Size,
	}
	view, err := documenthandler.Instance.Upload(ctx.UserContext(), info, file)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Скачать документ
// @Tags Документы
// @Description Скачать файл документа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id}/download [get]
func (c *documentApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, name, contentType, err := documenthandler.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendDomainError(ctx, err)
	}
	if contentType != "" {
		ctx.Set(fiber.HeaderContentType, contentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Удалить документ
// @Tags Документы
// @Description Удалить документ вместе с файлом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param 	id 				path 		string  true 	"document ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [delete]
func (c *documentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = documenthandler.Instance.Delete(ctx.UserContext(), id); err != nil {
		return c.SendDomainError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("документ удален"))
}
