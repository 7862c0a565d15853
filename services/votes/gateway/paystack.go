package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/piresc/evoting/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/evoting/internal/pkg/http"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/pkg/models"
)

const (
	initializePath = "/transaction/initialize"
	verifyPath     = "/transaction/verify/"
)

// PaystackGW translates payment requests to the provider REST API.
// Every failure is folded into a Status false result.
type PaystackGW struct {
	client *httpclient.BearerClient
}

// NewPaystackGW creates a provider adapter over an authenticated client
func NewPaystackGW(client *httpclient.BearerClient) *PaystackGW {
	return &PaystackGW{client: client}
}

type initializeEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyEnvelope struct {
	Status  bool                       `json:"status"`
	Message string                     `json:"message"`
	Data    models.ProviderTransaction `json:"data"`
}

// InitializeTransaction opens a hosted checkout for the payload
func (g *PaystackGW) InitializeTransaction(ctx context.Context, payload models.InitializeTransactionPayload) models.InitializeTransactionResult {
	resp, err := g.client.Post(ctx, initializePath, payload)
	if err != nil {
		logProviderError("initialize", payload.Reference, err)
		return models.InitializeTransactionResult{Status: false, Message: failureMessage(err)}
	}

	var env initializeEnvelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		logger.Error("Malformed provider response",
			logger.String("operation", "initialize"),
			logger.String("reference", payload.Reference),
			logger.Int("status", resp.StatusCode))
		return models.InitializeTransactionResult{Status: false, Message: "Invalid response from payment provider"}
	}

	if resp.StatusCode >= 300 || !env.Status || env.Data.AuthorizationURL == "" {
		message := env.Message
		if message == "" {
			message = "Payment initialization failed"
		}
		logger.Warn("Provider rejected initialization",
			logger.String("reference", payload.Reference),
			logger.Int("status", resp.StatusCode),
			logger.String("message", message))
		return models.InitializeTransactionResult{Status: false, Message: message, Raw: resp.Body}
	}

	return models.InitializeTransactionResult{
		Status:           true,
		Message:          env.Message,
		AuthorizationURL: env.Data.AuthorizationURL,
		AccessCode:       env.Data.AccessCode,
		Raw:              resp.Body,
	}
}

// VerifyTransaction fetches the provider view of a reference
func (g *PaystackGW) VerifyTransaction(ctx context.Context, reference string) models.VerifyTransactionResult {
	resp, err := g.client.Get(ctx, verifyPath+url.PathEscape(reference))
	if err != nil {
		logProviderError("verify", reference, err)
		return models.VerifyTransactionResult{Status: false, Message: failureMessage(err)}
	}

	var env verifyEnvelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		logger.Error("Malformed provider response",
			logger.String("operation", "verify"),
			logger.String("reference", reference),
			logger.Int("status", resp.StatusCode))
		return models.VerifyTransactionResult{Status: false, Message: "Invalid response from payment provider"}
	}

	if resp.StatusCode >= 300 || !env.Status {
		message := env.Message
		if message == "" {
			message = "Payment verification failed"
		}
		return models.VerifyTransactionResult{Status: false, Message: message, Raw: resp.Body}
	}

	return models.VerifyTransactionResult{
		Status:  true,
		Message: env.Message,
		Data:    env.Data,
		Raw:     resp.Body,
	}
}

func failureMessage(err error) string {
	if errors.Is(err, circuitbreaker.ErrOpen) {
		return "Payment provider temporarily unavailable"
	}
	return "Unable to reach payment provider"
}

func logProviderError(operation, reference string, err error) {
	logger.Error("Payment provider call failed",
		logger.String("operation", operation),
		logger.String("reference", reference),
		logger.Err(err))
}
