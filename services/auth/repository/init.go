package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
)

const uniqueViolation = "23505"

// AuthRepo implements admin and OTP persistence on Postgres
type AuthRepo struct {
	db *sqlx.DB
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(db *sqlx.DB) *AuthRepo {
	return &AuthRepo{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
