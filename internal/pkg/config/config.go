package config

import (
	"log"
	"time"

	"github.com/piresc/evoting/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is local
// the env file at configPath is read first and real environment variables
// still take precedence.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "evoting")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")
	v.SetDefault("APP_URL", "http://localhost:8080")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("JWT_EXPIRATION", 120)
	v.SetDefault("JWT_ISSUER", "evoting")

	v.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	v.SetDefault("PAYSTACK_TIMEOUT_SECONDS", 15)

	v.SetDefault("FRONTEND_URL", "http://localhost")

	v.SetDefault("VOTE_UNIT_PRICE_MINOR", 100)
	v.SetDefault("VOTE_MAX_PER_TRANSACTION", 100)
	v.SetDefault("PUBLIC_RESULTS_ENABLED", false)
	v.SetDefault("PENDING_EXPIRY_HOURS", 24)

	v.SetDefault("NSQ_ENABLED", false)
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("RATE_LIMIT_REQUESTS", 30)
	v.SetDefault("RATE_LIMIT_PERIOD_SECONDS", 60)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.URL = v.GetString("APP_URL")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Payment provider
	configs.Paystack.SecretKey = v.GetString("PAYSTACK_SECRET_KEY")
	configs.Paystack.BaseURL = v.GetString("PAYSTACK_BASE_URL")
	configs.Paystack.Timeout = time.Duration(v.GetInt("PAYSTACK_TIMEOUT_SECONDS")) * time.Second

	configs.Frontend.URL = v.GetString("FRONTEND_URL")

	// Voting rules
	configs.Voting.UnitPriceMinor = v.GetInt64("VOTE_UNIT_PRICE_MINOR")
	configs.Voting.MaxVotesPerTxn = v.GetInt("VOTE_MAX_PER_TRANSACTION")
	configs.Voting.PublicResultsEnabled = v.GetBool("PUBLIC_RESULTS_ENABLED")
	configs.Voting.PendingExpiryHours = v.GetInt("PENDING_EXPIRY_HOURS")

	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.RateLimit.Period = time.Duration(v.GetInt("RATE_LIMIT_PERIOD_SECONDS")) * time.Second

	return configs
}
