package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
	"github.com/piresc/evoting/services/auth"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login checks the password and sends an OTP
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "A verification code has been sent", resp)
}

// VerifyOTP exchanges a valid OTP for a session token
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req)
	if err != nil {
		logger.Warn("OTP verification failed",
			logger.String("email", utils.MaskEmail(req.Email)),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// OTPStatus reports the remaining guesses of an email
func (h *AuthHandler) OTPStatus(c echo.Context) error {
	email := c.QueryParam("email")
	if !utils.IsValidEmail(email) {
		return utils.BadRequestResponse(c, "A valid email query parameter is required")
	}

	status, err := h.authUC.OTPStatus(c.Request().Context(), email)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP status", status)
}
