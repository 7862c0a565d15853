package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/services/votes/handler/http"
)

// Handler wires the voter facing endpoints
type Handler struct {
	votesHandler *http.VotesHandler
}

// NewHandler creates the votes route handler
func NewHandler(votesHandler *http.VotesHandler) *Handler {
	return &Handler{votesHandler: votesHandler}
}

// RegisterRoutes mounts the catalog, vote and payment endpoints
func (h *Handler) RegisterRoutes(api *echo.Group, limiter echo.MiddlewareFunc) {
	api.GET("/categories", h.votesHandler.ListCategories)
	api.GET("/positions/:id/candidates", h.votesHandler.ListCandidates)

	vote := api.Group("/vote")
	vote.POST("/initialize", h.votesHandler.InitializeVote, limiter)
	vote.POST("/verify", h.votesHandler.VerifyVote, limiter)

	api.POST("/webhook/paystack", h.votesHandler.PaystackWebhook)
	api.GET("/payment/success", h.votesHandler.PaymentSuccess)
}
