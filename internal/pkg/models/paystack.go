package models

import "encoding/json"

// Webhook event names handled by the reconciliation engine
const (
	EventChargeSuccess = "charge.success"
	EventChargeFailed  = "charge.failed"
)

// Provider transaction statuses
const (
	ProviderStatusSuccess   = "success"
	ProviderStatusFailed    = "failed"
	ProviderStatusAbandoned = "abandoned"
	ProviderStatusReversed  = "reversed"
)

// InitializeTransactionPayload is the outbound checkout request
type InitializeTransactionPayload struct {
	Email       string          `json:"email"`
	Amount      int64           `json:"amount"` // minor units
	Reference   string          `json:"reference"`
	CallbackURL string          `json:"callback_url"`
	Metadata    PaymentMetadata `json:"metadata"`
}

// InitializeTransactionResult is the adapter result. Status false carries Message.
type InitializeTransactionResult struct {
	Status           bool            `json:"status"`
	Message          string          `json:"message,omitempty"`
	AuthorizationURL string          `json:"authorization_url,omitempty"`
	AccessCode       string          `json:"access_code,omitempty"`
	Raw              json.RawMessage `json:"-"`
}

// ProviderTransaction is the transaction object of verify responses and webhooks
type ProviderTransaction struct {
	Status          string `json:"status"`
	Reference       string `json:"reference"`
	Amount          int64  `json:"amount"`
	GatewayResponse string `json:"gateway_response"`
	PaidAt          string `json:"paid_at"`
}

// VerifyTransactionResult is the adapter result. Raw keeps the provider body.
type VerifyTransactionResult struct {
	Status  bool                `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    ProviderTransaction `json:"data"`
	Raw     json.RawMessage     `json:"-"`
}

// WebhookEvent is the signed provider notification
type WebhookEvent struct {
	Event string              `json:"event"`
	Data  ProviderTransaction `json:"data"`
}

// SettlementStatus maps a provider transaction status onto the local state.
// Unknown and in-flight statuses stay pending.
func SettlementStatus(providerStatus string) PaymentStatus {
	switch providerStatus {
	case ProviderStatusSuccess:
		return PaymentStatusSuccess
	case ProviderStatusFailed, ProviderStatusAbandoned, ProviderStatusReversed:
		return PaymentStatusFailed
	default:
		return PaymentStatusPending
	}
}

// RedirectOutcome is where a returning voter is sent
type RedirectOutcome struct {
	Reference string
	Success   bool
	ErrorCode string
}

// Redirect error codes
const (
	RedirectMissingReference   = "missing_reference"
	RedirectPaymentNotFound    = "payment_not_found"
	RedirectVerificationFailed = "verification_failed"
	RedirectPaymentFailed      = "payment_failed"
	RedirectPaymentPending     = "payment_pending"
)
