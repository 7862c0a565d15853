package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Paystack  PaystackConfig
	Frontend  FrontendConfig
	Voting    VotingConfig
	NSQ       NSQConfig
	Logger    LoggerConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	URL         string // public base URL of this API, used for provider callbacks
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PaystackConfig contains payment provider configuration
type PaystackConfig struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

// FrontendConfig contains the voter-facing SPA location
type FrontendConfig struct {
	URL string
}

// VotingConfig contains static voting rules
type VotingConfig struct {
	UnitPriceMinor       int64 // price of a single vote in minor units
	MaxVotesPerTxn       int
	PublicResultsEnabled bool // fallback when the setting row is absent
	PendingExpiryHours   int
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Enabled bool
	Address string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// RateLimitConfig contains limits for the public write endpoints
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}
