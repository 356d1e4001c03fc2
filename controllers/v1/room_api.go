package apiv1

import (
	"hotel-ops-backend/controllers"
	roomhandler "hotel-ops-backend/lib/room"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	roomapimodels "hotel-ops-backend/models/api/room"

	"github.com/gofiber/fiber/v2"
)

type roomApiController struct {
	controllers.BaseAPIController
}

func InitRoomApiRouters(app *fiber.App) {
	controller := roomApiController{}
	app.Route("room", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("status", controller.setStatus)
			idRoute.Put("checkin", controller.checkin)
			idRoute.Put("checkout", controller.checkout)
		})
	})
}

// @Summary Create room
// @Tags Rooms
// @Description Register a room, supervisor only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 roomapimodels.RoomCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/room [post]
func (c *roomApiController) create(ctx *fiber.Ctx) error {
	var payload roomapimodels.RoomCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := roomhandler.Instance.Create(middleware.GetAuthUser(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create room")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Room list
// @Tags Rooms
// @Description All rooms ordered by number
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]roomapimodels.RoomView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/room/list [get]
func (c *roomApiController) list(ctx *fiber.Ctx) error {
	list, err := roomhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list rooms")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get room
// @Tags Rooms
// @Description Room details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=roomapimodels.RoomView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/room/{id} [get]
func (c *roomApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := roomhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get room")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Set room status
// @Tags Rooms
// @Description Change the room's cleanliness status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 roomapimodels.RoomStatusData	true	"request body"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/room/{id}/status [put]
func (c *roomApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload roomapimodels.RoomStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = roomhandler.Instance.SetStatus(middleware.GetAuthUser(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to set room status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Check in
// @Tags Rooms
// @Description Occupy the room and issue the guest session token
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 roomapimodels.CheckinData	true	"request body"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=roomapimodels.CheckinView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/room/{id}/checkin [put]
func (c *roomApiController) checkin(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload roomapimodels.CheckinData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := roomhandler.Instance.CheckIn(middleware.GetAuthUser(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to check in")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Check out
// @Tags Rooms
// @Description Vacate the room and queue the checkout cleaning
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/room/{id}/checkout [put]
func (c *roomApiController) checkout(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = roomhandler.Instance.CheckOut(middleware.GetAuthUser(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to check out")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
