package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/gatewarden/auth-service/internal/auth/domain"
	repo "github.com/gatewarden/auth-service/internal/auth/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIP(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewBlockedIPRepository(mock)
	columns := []string{"id", "ip_address", "reason", "is_permanent", "expires_at", "created_at"}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, ip_address, reason").
			WithArgs("203.0.113.7").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("b1", "203.0.113.7", "abuse", true, nil, time.Now()))

		blocked, err := r.GetByIP(context.Background(), "203.0.113.7")
		require.NoError(t, err)
		require.NotNil(t, blocked)
		assert.True(t, blocked.IsPermanent)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, ip_address, reason").
			WithArgs("198.51.100.1").
			WillReturnError(pgx.ErrNoRows)

		blocked, err := r.GetByIP(context.Background(), "198.51.100.1")
		require.NoError(t, err)
		assert.Nil(t, blocked)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewBlockedIPRepository(mock)
	expiresAt := time.Now().Add(time.Hour)
	blocked := &domain.BlockedIP{
		ID:        "b1",
		IPAddress: "203.0.113.7",
		Reason:    "credential stuffing",
		ExpiresAt: &expiresAt,
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO blocked_ips").
		WithArgs(blocked.ID, blocked.IPAddress, blocked.Reason, blocked.IsPermanent, blocked.ExpiresAt, blocked.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Upsert(context.Background(), blocked))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewBlockedIPRepository(mock)
	now := time.Now()

	// Idempotent: zero rows affected is not an error.
	mock.ExpectExec("DELETE FROM blocked_ips").
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, r.DeleteExpired(context.Background(), now))
	require.NoError(t, mock.ExpectationsWereMet())
}
