package repository

import (
	"github.com/jmoiron/sqlx"
)

const statusActive = "active"

// VotesRepo implements catalog and vote persistence on Postgres
type VotesRepo struct {
	db *sqlx.DB
}

// NewVotesRepo creates a new votes repository
func NewVotesRepo(db *sqlx.DB) *VotesRepo {
	return &VotesRepo{db: db}
}
