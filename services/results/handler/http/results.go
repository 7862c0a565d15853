package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
	"github.com/piresc/evoting/services/results"
)

// ResultsHandler serves the tallies and the admin dashboard
type ResultsHandler struct {
	resultsUC results.ResultsUC
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsUC results.ResultsUC) *ResultsHandler {
	return &ResultsHandler{resultsUC: resultsUC}
}

// PublicResults returns tallies when publishing is switched on
func (h *ResultsHandler) PublicResults(c echo.Context) error {
	filter, ok := parseFilter(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid results filter")
	}

	rows, err := h.resultsUC.PublicResults(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Results retrieved", rows)
}

// AdminResults returns tallies for any signed in admin
func (h *ResultsHandler) AdminResults(c echo.Context) error {
	filter, ok := parseFilter(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid results filter")
	}

	rows, err := h.resultsUC.AdminResults(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Results retrieved", rows)
}

// Dashboard returns vote and payment totals
func (h *ResultsHandler) Dashboard(c echo.Context) error {
	summary, err := h.resultsUC.Dashboard(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved", summary)
}

func parseFilter(c echo.Context) (models.ResultFilter, bool) {
	var filter models.ResultFilter
	for param, dest := range map[string]*int64{
		"category_id": &filter.CategoryID,
		"position_id": &filter.PositionID,
	} {
		raw := c.QueryParam(param)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return filter, false
		}
		*dest = id
	}
	return filter, true
}
