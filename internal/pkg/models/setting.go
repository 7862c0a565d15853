package models

import (
	"strings"
	"time"
)

// Setting is a generic key/value configuration row
type Setting struct {
	Key         string    `json:"key" db:"key"`
	Value       string    `json:"value" db:"value"`
	Description string    `json:"description" db:"description"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ScheduleLogEntry is one audit record of a voting schedule action
type ScheduleLogEntry struct {
	Action      string    `json:"action"`
	Category    string    `json:"category"`
	Actor       string    `json:"actor"`
	EffectiveAt time.Time `json:"effective_at"`
	LoggedAt    time.Time `json:"logged_at"`
}

// CategorySchedule is the voting state of one category
type CategorySchedule struct {
	Category string `json:"category"`
	Active   bool   `json:"active"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}

// ScheduleStatus is the aggregate voting state
type ScheduleStatus struct {
	Categories []CategorySchedule `json:"categories"`
	AnyActive  bool               `json:"any_active"`
	Logs       []ScheduleLogEntry `json:"logs,omitempty"`
}

// ResultRow is one candidate's total
type ResultRow struct {
	CategoryID  int64  `json:"category_id" db:"category_id"`
	Category    string `json:"category" db:"category"`
	PositionID  int64  `json:"position_id" db:"position_id"`
	Position    string `json:"position" db:"position"`
	CandidateID int64  `json:"candidate_id" db:"candidate_id"`
	Candidate   string `json:"candidate" db:"candidate"`
	TotalVotes  int64  `json:"total_votes" db:"total_votes"`
}

// ResultFilter narrows results; position wins over category when both are set.
// ActiveOnly drops deactivated candidates and positions.
type ResultFilter struct {
	CategoryID int64
	PositionID int64
	ActiveOnly bool
}

// DashboardSummary is the admin overview built from payments
type DashboardSummary struct {
	TotalVotes         int64   `json:"total_votes" db:"total_votes"`
	TotalRevenueMinor  int64   `json:"-" db:"total_revenue"`
	TotalRevenue       float64 `json:"total_revenue" db:"-"`
	SuccessfulPayments int64   `json:"successful_payments" db:"successful_payments"`
	PendingPayments    int64   `json:"pending_payments" db:"pending_payments"`
	FailedPayments     int64   `json:"failed_payments" db:"failed_payments"`
}

// Well-known setting keys
const (
	SettingPublicResultsEnabled = "public_results_enabled"
	SettingScheduleLogs         = "voting_schedule_logs"

	// MaxScheduleLogs bounds the schedule audit ring buffer
	MaxScheduleLogs = 100
)

// Voting categories managed by the schedule tool
const (
	CategoryChurch   = "church"
	CategoryNational = "national"
)

// ScheduleCategories lists the categories in display order
var ScheduleCategories = []string{CategoryChurch, CategoryNational}

// VotingActiveKey is the setting that opens or closes a category
func VotingActiveKey(category string) string {
	return strings.ToLower(category) + "_voting_active"
}

// VotingStartKey records when a category was last opened
func VotingStartKey(category string) string {
	return strings.ToLower(category) + "_voting_start"
}

// VotingEndKey records when a category was last closed
func VotingEndKey(category string) string {
	return strings.ToLower(category) + "_voting_end"
}

// LockMessageKey is the user-facing text shown while a category is closed
func LockMessageKey(category string) string {
	return strings.ToLower(category) + "_voting_lock_message"
}

// LockMessageRequest updates the closed-voting text of a category
type LockMessageRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// PublicResultsRequest toggles the public results endpoint
type PublicResultsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// IsScheduleCategory reports whether category is managed by the schedule tool
func IsScheduleCategory(category string) bool {
	for _, c := range ScheduleCategories {
		if c == strings.ToLower(category) {
			return true
		}
	}
	return false
}

// Schedule actions accepted by the CLI and the admin API
const (
	ScheduleActionStart  = "start"
	ScheduleActionEnd    = "end"
	ScheduleActionStatus = "status"
)

// ScheduleRequest carries the optional effective date of a schedule action
type ScheduleRequest struct {
	Date string `json:"date"`
}
