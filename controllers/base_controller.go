package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"company-portal-backend/models"
	apimodels "company-portal-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

// SendDomainError единственная точка трансляции доменных ошибок в http статусы
func (c *BaseAPIController) SendDomainError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrInvalidStatus):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrInvalidCredentials):
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	// детали внутренних ошибок наружу не отдаем, они остаются в логе
	log.WithError(err).Error("внутренняя ошибка обработки запроса")
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("внутренняя ошибка сервиса"))
}
