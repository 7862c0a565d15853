package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/middleware"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/services/schedule/handler/http"
)

// Handler wires the schedule endpoints
type Handler struct {
	scheduleHandler *http.ScheduleHandler
}

// NewHandler creates the schedule route handler
func NewHandler(scheduleHandler *http.ScheduleHandler) *Handler {
	return &Handler{scheduleHandler: scheduleHandler}
}

// RegisterRoutes mounts the schedule endpoints on an authenticated admin group
func (h *Handler) RegisterRoutes(admin *echo.Group) {
	g := admin.Group("/schedule")
	g.GET("", h.scheduleHandler.Status)
	g.POST("/:action", h.scheduleHandler.Apply, middleware.RequireRole(models.RoleSuperAdmin))
}
