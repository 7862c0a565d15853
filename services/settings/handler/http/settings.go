package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/middleware"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
	"github.com/piresc/evoting/services/settings"
)

// SettingsHandler handles admin settings endpoints
type SettingsHandler struct {
	settingsUC settings.SettingsUC
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsUC settings.SettingsUC) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// UpdateLockMessage sets the message shown while a category is closed
func (h *SettingsHandler) UpdateLockMessage(c echo.Context) error {
	category := strings.ToLower(c.Param("category"))
	if !models.IsScheduleCategory(category) {
		return utils.NotFoundResponse(c, "Unknown voting category")
	}

	var req models.LockMessageRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		logger.Warn("Invalid lock message request", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	if err := h.settingsUC.Set(c.Request().Context(), models.LockMessageKey(category), req.Message, "Message shown while "+category+" voting is closed"); err != nil {
		logger.Error("Failed to update lock message", logger.String("category", category), logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("Lock message updated",
		logger.String("category", category),
		logger.String("admin_id", middleware.AdminID(c)))

	return utils.SuccessResponse(c, http.StatusOK, "Lock message updated", map[string]string{
		"category": category,
		"message":  req.Message,
	})
}

// UpdatePublicResults toggles public access to results
func (h *SettingsHandler) UpdatePublicResults(c echo.Context) error {
	var req models.PublicResultsRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.settingsUC.SetBool(c.Request().Context(), models.SettingPublicResultsEnabled, *req.Enabled, "Expose results on the public endpoint"); err != nil {
		logger.Error("Failed to toggle public results", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	logger.Info("Public results toggled",
		logger.Bool("enabled", *req.Enabled),
		logger.String("admin_id", middleware.AdminID(c)))

	return utils.SuccessResponse(c, http.StatusOK, "Public results setting updated", map[string]bool{
		"enabled": *req.Enabled,
	})
}
