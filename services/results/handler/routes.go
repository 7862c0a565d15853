package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/services/results/handler/http"
)

// Handler wires the results endpoints
type Handler struct {
	resultsHandler *http.ResultsHandler
}

// NewHandler creates the results route handler
func NewHandler(resultsHandler *http.ResultsHandler) *Handler {
	return &Handler{resultsHandler: resultsHandler}
}

// RegisterRoutes mounts the public results and the admin views
func (h *Handler) RegisterRoutes(api, admin *echo.Group) {
	api.GET("/results", h.resultsHandler.PublicResults)

	admin.GET("/results", h.resultsHandler.AdminResults)
	admin.GET("/dashboard", h.resultsHandler.Dashboard)
}
