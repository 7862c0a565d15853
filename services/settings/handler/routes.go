package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/middleware"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/services/settings/handler/http"
)

// Handler wires the settings endpoints
type Handler struct {
	settingsHandler *http.SettingsHandler
}

// NewHandler creates the settings route handler
func NewHandler(settingsHandler *http.SettingsHandler) *Handler {
	return &Handler{settingsHandler: settingsHandler}
}

// RegisterRoutes mounts the settings endpoints on an authenticated admin group
func (h *Handler) RegisterRoutes(admin *echo.Group) {
	g := admin.Group("/settings", middleware.RequireRole(models.RoleSuperAdmin))
	g.PUT("/lock-message/:category", h.settingsHandler.UpdateLockMessage)
	g.PUT("/public-results", h.settingsHandler.UpdatePublicResults)
}
