package controllers

import (
	"hotel-ops-backend/lib/utils/apperrors"
	apimodels "hotel-ops-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError maps handler errors to HTTP statuses. Classified errors carry a
// caller-safe message; anything unclassified is logged and hidden behind the
// generic fallback text.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, fallbackMsg string) error {
	kind, ok := apperrors.KindOf(err)
	if ok {
		switch kind {
		case apperrors.KindValidation:
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		case apperrors.KindForbidden:
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
		case apperrors.KindNotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		case apperrors.KindConflict:
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
	}
	logger.WithError(err).Error(fallbackMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(fallbackMsg))
}
