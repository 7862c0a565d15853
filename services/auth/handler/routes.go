package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/services/auth/handler/http"
)

// Handler wires the admin authentication endpoints
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates the auth route handler
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{authHandler: authHandler}
}

// RegisterRoutes mounts the public admin login endpoints behind the given limiter
func (h *Handler) RegisterRoutes(api *echo.Group, limiter echo.MiddlewareFunc) {
	admin := api.Group("/admin")
	admin.POST("/login", h.authHandler.Login, limiter)
	admin.POST("/verify-otp", h.authHandler.VerifyOTP, limiter)
	admin.GET("/otp/status", h.authHandler.OTPStatus, limiter)
}
