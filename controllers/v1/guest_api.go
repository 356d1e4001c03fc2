package apiv1

import (
	"hotel-ops-backend/controllers"
	guestrequesthandler "hotel-ops-backend/lib/guest-request"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	guestapimodels "hotel-ops-backend/models/api/guest"

	"github.com/gofiber/fiber/v2"
)

// GuestSessionHeader carries the QR session token issued at check-in.
const GuestSessionHeader = "X-Guest-Session"

type guestApiController struct {
	controllers.BaseAPIController
}

func InitGuestApiRouters(app *fiber.App) {
	controller := guestApiController{}
	// guest-facing endpoints authenticate with the session token, not JWT
	app.Route("guest/request", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("list", controller.listMine)
	})
	app.Route("guest-request", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("list", controller.listOpen)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("seen", controller.markSeen)
			idRoute.Put("status", controller.setStatus)
			idRoute.Put("forward", controller.forward)
		})
	})
}

// @Summary Create guest request
// @Tags Guest requests
// @Description Guest files a request from the in-room QR page
// @Param   X-Guest-Session	header		string	true	"Guest session token"
// @Param	body body	 guestapimodels.GuestRequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/guest/request [post]
func (c *guestApiController) create(ctx *fiber.Ctx) error {
	var payload guestapimodels.GuestRequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := guestrequesthandler.Instance.CreateBySession(ctx.Get(GuestSessionHeader), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create guest request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Guest's own requests
// @Tags Guest requests
// @Description Requests filed from the guest's room
// @Param   X-Guest-Session	header		string	true	"Guest session token"
// @Success 200 {object} apimodels.Response{data=[]guestapimodels.GuestRequestView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/guest/request/list [get]
func (c *guestApiController) listMine(ctx *fiber.Ctx) error {
	list, err := guestrequesthandler.Instance.ListBySession(ctx.Get(GuestSessionHeader))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list guest requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Open guest requests
// @Tags Guest requests
// @Description All not-yet-completed requests, for the staff board
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]guestapimodels.GuestRequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/guest-request/list [get]
func (c *guestApiController) listOpen(ctx *fiber.Ctx) error {
	list, err := guestrequesthandler.Instance.ListOpen()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list guest requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get guest request
// @Tags Guest requests
// @Description Guest request details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=guestapimodels.GuestRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/guest-request/{id} [get]
func (c *guestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := guestrequesthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get guest request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Mark request as seen
// @Tags Guest requests
// @Description Staff acknowledges the request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/guest-request/{id}/seen [put]
func (c *guestApiController) markSeen(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = guestrequesthandler.Instance.MarkSeen(middleware.GetAuthUser(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to mark guest request as seen")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change request status
// @Tags Guest requests
// @Description Move the request along its workflow
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 guestapimodels.GuestRequestStatusData	true	"request body"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/guest-request/{id}/status [put]
func (c *guestApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload guestapimodels.GuestRequestStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = guestrequesthandler.Instance.SetStatus(middleware.GetAuthUser(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to change guest request status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Forward request
// @Tags Guest requests
// @Description Hand the request to a department, once
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 guestapimodels.GuestRequestForwardData	true	"request body"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/guest-request/{id}/forward [put]
func (c *guestApiController) forward(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload guestapimodels.GuestRequestForwardData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = guestrequesthandler.Instance.Forward(middleware.GetAuthUser(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to forward guest request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
