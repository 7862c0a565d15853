package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/models"
)

func setupAuthRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return NewAuthRepo(sqlxDB), mock, func() { sqlxDB.Close() }
}

var otpColumns = []string{"id", "email", "otp_code", "expires_at", "is_verified", "attempt_count", "created_at"}

func liveOTPRow(code string, attempts int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(otpColumns).
		AddRow("otp-1", "admin@example.com", code, now.Add(4*time.Minute), false, attempts, now)
}

func TestGetAdminByEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "is_active", "created_at", "updated_at"}).
			AddRow("admin-1", "Ada", "admin@example.com", "$2a$hash", models.RoleSuperAdmin, true, now, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM admin_users")).
			WithArgs("admin@example.com").
			WillReturnRows(rows)

		admin, err := repo.GetAdminByEmail(context.Background(), "admin@example.com")

		require.NoError(t, err)
		assert.Equal(t, "admin-1", admin.ID)
		assert.Equal(t, models.RoleSuperAdmin, admin.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("FROM admin_users")).
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		admin, err := repo.GetAdminByEmail(context.Background(), "ghost@example.com")

		assert.Nil(t, admin)
		assert.True(t, apperror.Is(err, apperror.KindNotFound))
	})
}

func TestCreateAdmin(t *testing.T) {
	admin := &models.AdminUser{
		ID:           "admin-1",
		Name:         "Ada",
		Email:        "admin@example.com",
		PasswordHash: "$2a$hash",
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admin_users")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateAdmin(context.Background(), admin))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admin_users")).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreateAdmin(context.Background(), admin)
		assert.True(t, apperror.Is(err, apperror.KindConflict))
	})
}

func TestReplaceOTP(t *testing.T) {
	otp := &models.AdminOTP{
		ID:        "otp-2",
		Email:     "admin@example.com",
		Code:      "01234567",
		ExpiresAt: time.Now().Add(models.OTPTTL),
		CreatedAt: time.Now(),
	}

	t.Run("Deletes previous rows then inserts", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admin_otps WHERE email = $1")).
			WithArgs("admin@example.com").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admin_otps")).
			WithArgs("otp-2", "admin@example.com", "01234567", otp.ExpiresAt, false, 0, otp.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ReplaceOTP(context.Background(), otp))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admin_otps")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admin_otps")).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.ReplaceOTP(context.Background(), otp)
		assert.ErrorContains(t, err, "failed to create OTP")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAttemptOTP(t *testing.T) {
	testCases := []struct {
		name      string
		code      string
		mockSetup func(mock sqlmock.Sqlmock)
		expected  models.OTPAttemptResult
	}{
		{
			name: "Matching code is marked verified",
			code: "01234567",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs("admin@example.com").
					WillReturnRows(liveOTPRow("01234567", 1))
				mock.ExpectExec(regexp.QuoteMeta("SET is_verified = true")).
					WithArgs("otp-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expected: models.OTPVerified,
		},
		{
			name: "Wrong code consumes an attempt",
			code: "99999999",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs("admin@example.com").
					WillReturnRows(liveOTPRow("01234567", 0))
				mock.ExpectExec(regexp.QuoteMeta("SET attempt_count = attempt_count + 1")).
					WithArgs("otp-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expected: models.OTPMismatch,
		},
		{
			name: "Exhausted row is deleted even for the right code",
			code: "01234567",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs("admin@example.com").
					WillReturnRows(liveOTPRow("01234567", 3))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admin_otps WHERE id = $1")).
					WithArgs("otp-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expected: models.OTPExhausted,
		},
		{
			name: "No live OTP",
			code: "01234567",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs("admin@example.com").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expected: models.OTPNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo, mock, cleanup := setupAuthRepoTest(t)
			defer cleanup()
			tc.mockSetup(mock)

			// Act
			result, err := repo.AttemptOTP(context.Background(), "admin@example.com", tc.code, models.OTPMaxAttempts)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetLiveOTP(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("expires_at > NOW()")).
		WithArgs("admin@example.com").
		WillReturnRows(liveOTPRow("01234567", 2))

	otp, err := repo.GetLiveOTP(context.Background(), "admin@example.com")

	require.NoError(t, err)
	assert.Equal(t, 2, otp.AttemptCount)
}

func TestDeleteExpiredOTPs(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM admin_otps WHERE expires_at <= NOW()")).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteExpiredOTPs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
