package constants

import "time"

// Redis key formats
const (
	// Settings store
	KeySetting = "settings:%s" // Format: settings:{key}

	// Catalog
	KeyCandidatesByPosition = "candidates:position:%d" // Format: candidates:position:{position_id}

	// Reconciliation
	KeyPaymentVerified   = "payment:verified:%s"    // Format: payment:verified:{reference}
	KeySessionPaymentRef = "session:payment_ref:%s" // Format: session:payment_ref:{session_id}

	// Results aggregator
	KeyDashboardSummary      = "dashboard:summary"
	KeyPublicResultsAll      = "results:public:all"
	KeyPublicResultsPosition = "results:public:position:%d" // Format: results:public:position:{position_id}
	KeyPublicResultsCategory = "results:public:category:%d" // Format: results:public:category:{category_id}
	KeyAdminResultsAll       = "results:admin:all"
	KeyAdminResultsPosition  = "results:admin:position:%d" // Format: results:admin:position:{position_id}
	KeyAdminResultsCategory  = "results:admin:category:%d" // Format: results:admin:category:{category_id}

	// Rate Limiting
	KeyRateLimitIP = "rate:ip"
)

// Cache lifetimes
const (
	TTLSetting         = 5 * time.Minute
	TTLCandidates      = 5 * time.Minute
	TTLPaymentVerified = 5 * time.Minute
	TTLSessionSlot     = 30 * time.Minute
	TTLResults         = 60 * time.Second
	TTLDashboard       = 60 * time.Second
)

// SessionCookieName holds the opaque id of the voter's session slot
const SessionCookieName = "evoting_session"
