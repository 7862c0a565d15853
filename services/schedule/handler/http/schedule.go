package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/middleware"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
	"github.com/piresc/evoting/services/schedule"
	"github.com/piresc/evoting/services/schedule/usecase"
)

// ScheduleHandler exposes the schedule tool to admins
type ScheduleHandler struct {
	scheduleUC schedule.ScheduleUC
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleUC schedule.ScheduleUC) *ScheduleHandler {
	return &ScheduleHandler{scheduleUC: scheduleUC}
}

// Status returns the open/closed state per category and the latest audit entries
func (h *ScheduleHandler) Status(c echo.Context) error {
	status, err := h.scheduleUC.Status(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Schedule retrieved", status)
}

// Apply runs a start or end action on behalf of the signed in admin
func (h *ScheduleHandler) Apply(c echo.Context) error {
	var req models.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	effectiveAt, err := usecase.ParseDate(req.Date)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	action := c.Param("action")
	cs, err := h.scheduleUC.Apply(c.Request().Context(), action, effectiveAt, middleware.AdminEmail(c))
	if err != nil {
		logger.Warn("Schedule action rejected",
			logger.String("action", action),
			logger.String("admin_id", middleware.AdminID(c)),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Schedule updated", cs)
}
