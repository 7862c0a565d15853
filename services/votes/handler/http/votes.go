package http

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/constants"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/piresc/evoting/internal/utils"
	"github.com/piresc/evoting/services/votes"
)

const (
	signatureHeader = "X-Paystack-Signature"
	maxWebhookBytes = 1 << 20
)

// VotesHandler handles the voter facing endpoints and provider callbacks
type VotesHandler struct {
	cfg     *models.Config
	votesUC votes.VotesUC
}

// NewVotesHandler creates a new votes handler
func NewVotesHandler(cfg *models.Config, votesUC votes.VotesUC) *VotesHandler {
	return &VotesHandler{cfg: cfg, votesUC: votesUC}
}

// ListCategories returns categories, positions and voting state
func (h *VotesHandler) ListCategories(c echo.Context) error {
	listings, err := h.votesUC.ListCategories(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Categories retrieved", listings)
}

// ListCandidates returns the candidates of a position
func (h *VotesHandler) ListCandidates(c echo.Context) error {
	positionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || positionID <= 0 {
		return utils.BadRequestResponse(c, "Invalid position id")
	}

	candidates, err := h.votesUC.ListCandidates(c.Request().Context(), positionID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Candidates retrieved", candidates)
}

// InitializeVote starts a vote purchase and returns the checkout URL
func (h *VotesHandler) InitializeVote(c echo.Context) error {
	var req models.InitializeVoteRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	resp, err := h.votesUC.Initialize(c.Request().Context(), req, h.sessionID(c))
	if err != nil {
		logger.Warn("Vote initialization rejected",
			logger.Int64("candidate_id", req.CandidateID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment initialized", resp)
}

// VerifyVote polls the provider for a reference and returns the receipt
func (h *VotesHandler) VerifyVote(c echo.Context) error {
	var req models.VerifyVoteRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	receipt, err := h.votesUC.Verify(c.Request().Context(), req.Reference)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, receipt.Message, receipt)
}

// PaystackWebhook receives signed provider notifications
func (h *VotesHandler) PaystackWebhook(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBytes))
	if err != nil {
		logger.Warn("Failed to read webhook body", logger.Err(err))
		return utils.SuccessResponse(c, http.StatusOK, "", nil)
	}

	if err := h.votesUC.HandleWebhook(c.Request().Context(), body, c.Request().Header.Get(signatureHeader)); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", nil)
}

// PaymentSuccess finishes the browser redirect from the hosted checkout
func (h *VotesHandler) PaymentSuccess(c echo.Context) error {
	var sessionID string
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	outcome := h.votesUC.CompleteRedirect(c.Request().Context(), c.QueryParam("reference"), sessionID)
	base := utils.FrontendURL(h.cfg.Frontend.URL, c)

	if outcome.Success {
		return c.Redirect(http.StatusFound, base+"/payment/success?reference="+url.QueryEscape(outcome.Reference))
	}
	return c.Redirect(http.StatusFound, base+"/payment/failed?error="+url.QueryEscape(outcome.ErrorCode))
}

// sessionID returns the voter's session id, issuing a cookie when absent
func (h *VotesHandler) sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(constants.TTLSessionSlot.Seconds()),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
