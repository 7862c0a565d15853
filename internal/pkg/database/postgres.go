package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/evoting/internal/pkg/models"
)

// PostgresClient represents a PostgreSQL database client
type PostgresClient struct {
	db *sqlx.DB
}

// BuildDSN builds a pgx connection string from config
func BuildDSN(config models.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)
}

// NewPostgresClient opens a sqlx pool over the pgx stdlib driver
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	driver := config.Driver
	if driver == "" {
		driver = "pgx"
	}

	db, err := sqlx.Open(driver, BuildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &PostgresClient{db: db}, nil
}

// NewPostgresClientFromDB wraps an existing handle
func NewPostgresClientFromDB(db *sqlx.DB) *PostgresClient {
	return &PostgresClient{db: db}
}

// GetDB returns the underlying sqlx handle
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Ping checks connectivity
func (p *PostgresClient) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database connection pool
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
