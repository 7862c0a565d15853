package models

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the settlement state shared by a Payment and its Vote
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// CanTransitionTo reports whether moving from s to next is a legal edge.
// Only pending may move, and only to a final state.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return s == PaymentStatusPending && (next == PaymentStatusSuccess || next == PaymentStatusFailed)
}

// IsFinal reports whether the status is settled
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed
}

// Category groups positions, e.g. "Church" or "National"
type Category struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Position belongs to one category
type Position struct {
	ID           int64     `json:"id" db:"id"`
	CategoryID   int64     `json:"category_id" db:"category_id"`
	CategoryName string    `json:"category_name,omitempty" db:"category_name"`
	Name         string    `json:"name" db:"name"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Candidate belongs to one position. Vote totals are derived, never stored.
type Candidate struct {
	ID         int64     `json:"id" db:"id"`
	PositionID int64     `json:"position_id" db:"position_id"`
	Name       string    `json:"name" db:"name"`
	Bio        string    `json:"bio" db:"bio"`
	PhotoURL   string    `json:"photo_url" db:"photo_url"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CategoryListing is the public view of a category and its open positions
type CategoryListing struct {
	Category
	VotingActive bool       `json:"voting_active"`
	LockMessage  string     `json:"lock_message,omitempty"`
	Positions    []Position `json:"positions"`
}

// Vote records a pending or settled ballot purchase
type Vote struct {
	ID               string        `json:"id" db:"id"`
	CandidateID      int64         `json:"candidate_id" db:"candidate_id"`
	PositionID       int64         `json:"position_id" db:"position_id"`
	PaymentReference string        `json:"payment_reference" db:"payment_reference"`
	VoteCount        int           `json:"vote_count" db:"vote_count"`
	Amount           int64         `json:"amount" db:"amount"` // minor units
	VoterEmail       string        `json:"voter_email" db:"voter_email"`
	VoterPhone       string        `json:"voter_phone" db:"voter_phone"`
	PaymentStatus    PaymentStatus `json:"payment_status" db:"payment_status"`
	VotedAt          *time.Time    `json:"voted_at,omitempty" db:"voted_at"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// Payment mirrors a provider transaction, one-to-one with Vote by reference
type Payment struct {
	ID               string          `json:"id" db:"id"`
	Reference        string          `json:"reference" db:"reference"`
	Amount           int64           `json:"amount" db:"amount"` // minor units
	Status           PaymentStatus   `json:"status" db:"status"`
	Email            string          `json:"email" db:"email"`
	Phone            string          `json:"phone" db:"phone"`
	Metadata         json.RawMessage `json:"metadata" db:"metadata"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty" db:"provider_response"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// PaymentMetadata is the snapshot sent to the provider and stored on Payment
type PaymentMetadata struct {
	CandidateID   int64  `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	PositionID    int64  `json:"position_id"`
	PositionName  string `json:"position_name"`
	VoteCount     int    `json:"vote_count"`
}

// InitializeVoteRequest is the voter checkout request
type InitializeVoteRequest struct {
	CandidateID int64   `json:"candidate_id" validate:"required,gt=0"`
	PositionID  int64   `json:"position_id" validate:"required,gt=0"`
	VoteCount   int     `json:"vote_count" validate:"required,min=1,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"omitempty,max=20"`
}

// InitializeVoteResponse carries the provider redirect target
type InitializeVoteResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

// VerifyVoteRequest is the manual poll request
type VerifyVoteRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// Receipt is returned to the voter after verification
type Receipt struct {
	Reference     string        `json:"reference"`
	Amount        float64       `json:"amount"`
	VoteCount     int           `json:"vote_count"`
	CandidateName string        `json:"candidate_name"`
	PositionName  string        `json:"position_name"`
	Status        PaymentStatus `json:"status"`
	Message       string        `json:"message"`
}

// ReceiptRow is the joined row a receipt is built from
type ReceiptRow struct {
	Reference     string        `db:"reference"`
	Amount        int64         `db:"amount"`
	VoteCount     int           `db:"vote_count"`
	CandidateID   int64         `db:"candidate_id"`
	CandidateName string        `db:"candidate_name"`
	PositionID    int64         `db:"position_id"`
	PositionName  string        `db:"position_name"`
	CategoryID    int64         `db:"category_id"`
	VoterEmail    string        `db:"voter_email"`
	Status        PaymentStatus `db:"status"`
}

// VoteSettledEvent is published once per reference after a guarded transition
type VoteSettledEvent struct {
	Reference   string        `json:"reference"`
	Status      PaymentStatus `json:"status"`
	CandidateID int64         `json:"candidate_id"`
	PositionID  int64         `json:"position_id"`
	VoteCount   int           `json:"vote_count"`
	Amount      int64         `json:"amount"`
	Email       string        `json:"email"`
	SettledAt   time.Time     `json:"settled_at"`
}

// MinorToMajor renders minor units as the decimal currency amount
func MinorToMajor(minor int64) float64 {
	return float64(minor) / 100
}
