package apiv1

import (
	"hotel-ops-backend/controllers"
	housekeepinghandler "hotel-ops-backend/lib/housekeeping"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	hkapimodels "hotel-ops-backend/models/api/housekeeping"

	"github.com/gofiber/fiber/v2"
)

type housekeepingApiController struct {
	controllers.BaseAPIController
}

func InitHousekeepingApiRouters(app *fiber.App) {
	controller := housekeepingApiController{}
	app.Route("housekeeping", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("start", controller.start)
			idRoute.Put("complete", controller.complete)
			idRoute.Put("inspect", controller.inspect)
		})
	})
}

// @Summary Create cleaning task
// @Tags Housekeeping
// @Description Create a cleaning task for a room
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 hkapimodels.HkTaskCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/housekeeping [post]
func (c *housekeepingApiController) create(ctx *fiber.Ctx) error {
	var payload hkapimodels.HkTaskCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := housekeepinghandler.Instance.Create(middleware.GetAuthUser(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create cleaning task")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Cleaning task list
// @Tags Housekeeping
// @Description Filtered cleaning task list with pagination
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 hkapimodels.HkTaskFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]hkapimodels.HkTaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/housekeeping/list [post]
func (c *housekeepingApiController) list(ctx *fiber.Ctx) error {
	var payload hkapimodels.HkTaskFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := housekeepinghandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list cleaning tasks")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get cleaning task
// @Tags Housekeeping
// @Description Cleaning task details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=hkapimodels.HkTaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/housekeeping/{id} [get]
func (c *housekeepingApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := housekeepinghandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get cleaning task")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Delete cleaning task
// @Tags Housekeeping
// @Description Delete a cleaning task, supervisor only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/housekeeping/{id} [delete]
func (c *housekeepingApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = housekeepinghandler.Instance.Delete(middleware.GetAuthUser(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete cleaning task")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Start cleaning
// @Tags Housekeeping
// @Description Assigned housekeeper starts working on the room
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/housekeeping/{id}/start [put]
func (c *housekeepingApiController) start(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = housekeepinghandler.Instance.Start(middleware.GetAuthUser(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to start cleaning")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Complete cleaning
// @Tags Housekeeping
// @Description Assigned housekeeper reports the room as cleaned
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 hkapimodels.HkTaskCompleteData	true	"request body"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/housekeeping/{id}/complete [put]
func (c *housekeepingApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hkapimodels.HkTaskCompleteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = housekeepinghandler.Instance.Complete(middleware.GetAuthUser(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to complete cleaning")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Inspect cleaning
// @Tags Housekeeping
// @Description Supervisor passes or fails the cleaned room
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 hkapimodels.HkTaskInspectData	true	"request body"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/housekeeping/{id}/inspect [put]
func (c *housekeepingApiController) inspect(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hkapimodels.HkTaskInspectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = housekeepinghandler.Instance.Inspect(middleware.GetAuthUser(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to inspect cleaning")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
