package apiv1

import (
	"fmt"
	"hotel-ops-backend/controllers"
	reporthandler "hotel-ops-backend/lib/export/report"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	hkapimodels "hotel-ops-backend/models/api/housekeeping"
	taskapimodels "hotel-ops-backend/models/api/task"
	"time"

	"github.com/gofiber/fiber/v2"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.SupervisorRequired())

		router.Put("task_export", controller.taskExport)
		router.Put("housekeeping_export", controller.housekeepingExport)
	})
}

// @Summary Export maintenance tasks
// @Tags Reports
// @Description Filtered task list as an xlsx download, supervisor only
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	taskapimodels.TaskFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/task_export [put]
func (c *reportApiController) taskExport(ctx *fiber.Ctx) error {
	var payload taskapimodels.TaskFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := reporthandler.Instance.TasksXls(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export maintenance tasks")
	}
	fileName := fmt.Sprintf("tasks-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Export cleaning tasks
// @Tags Reports
// @Description Filtered cleaning list as an xlsx download, supervisor only
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	hkapimodels.HkTaskFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/housekeeping_export [put]
func (c *reportApiController) housekeepingExport(ctx *fiber.Ctx) error {
	var payload hkapimodels.HkTaskFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := reporthandler.Instance.HousekeepingXls(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export cleaning tasks")
	}
	fileName := fmt.Sprintf("housekeeping-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
