package apiv1

import (
	authhandler "hotel-ops-backend/lib/auth"
	devicetokenhandler "hotel-ops-backend/lib/device-token"
	"hotel-ops-backend/controllers"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	authapimodels "hotel-ops-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
	})
	app.Route("device", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("token", controller.registerToken)
		router.Delete("token", controller.logout)
	})
}

// @Summary Login
// @Tags Auth
// @Description Staff login with email and password
// @Param	body body	 authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.LoginView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := authhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Login failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Register device token
// @Tags Auth
// @Description Bind the device push token to the logged-in user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 authapimodels.DeviceTokenData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/device/token [post]
func (c *authApiController) registerToken(ctx *fiber.Ctx) error {
	var payload authapimodels.DeviceTokenData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err := devicetokenhandler.Instance.Register(userID, payload.PushToken, payload.Platform)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to register device token")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Logout device
// @Tags Auth
// @Description Deactivate the user's push tokens on logout
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/device/token [delete]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	err := devicetokenhandler.Instance.Logout(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to deactivate device tokens")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
