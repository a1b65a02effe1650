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

var userColumns = []string{"id", "email", "password_hash", "role", "is_active", "locked_until", "created_at", "updated_at"}

func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	email := "test@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs(email).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", email, "hash", "user", true, nil, time.Now(), time.Now()))

		user, err := r.GetByEmail(ctx, email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
		assert.True(t, user.IsActive)
		assert.Nil(t, user.LockedUntil)
	})

	t.Run("not found returns nil user, nil error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password_hash").
			WithArgs(email).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetLockedUntil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	until := time.Now().Add(15 * time.Minute)

	mock.ExpectExec("UPDATE users SET locked_until").
		WithArgs("user-123", until).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.SetLockedUntil(context.Background(), "user-123", until))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("wins the conditional update", func(t *testing.T) {
		mock.ExpectExec("UPDATE refresh_tokens SET revoked").
			WithArgs("rt-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		revoked, err := r.RevokeRefreshToken(ctx, "rt-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("already revoked flips no row", func(t *testing.T) {
		mock.ExpectExec("UPDATE refresh_tokens SET revoked").
			WithArgs("rt-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		revoked, err := r.RevokeRefreshToken(ctx, "rt-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	columns := []string{"id", "user_id", "token", "ip_address", "user_agent", "expires_at", "created_at", "revoked"}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("token-value").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("rt-1", "user-123", "token-value", "203.0.113.7", "agent", time.Now().Add(time.Hour), time.Now(), false))

		rt, err := r.GetRefreshToken(context.Background(), "token-value")
		require.NoError(t, err)
		require.NotNil(t, rt)
		assert.Equal(t, "user-123", rt.UserID)
		assert.False(t, rt.Revoked)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, token").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		rt, err := r.GetRefreshToken(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, rt)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountRecentFailures(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	since := time.Now().Add(-15 * time.Minute)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("victim@example.com", "203.0.113.7", since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := r.CountRecentFailures(context.Background(), "victim@example.com", "203.0.113.7", since)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordLoginAttempt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectExec("INSERT INTO login_attempts").
		WithArgs("victim@example.com", "203.0.113.7", false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.RecordLoginAttempt(context.Background(), "victim@example.com", "203.0.113.7", false))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	rt := &domain.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-123",
		Token:     "token-value",
		IPAddress: "203.0.113.7",
		UserAgent: "agent",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO refresh_tokens").
		WithArgs(rt.ID, rt.UserID, rt.Token, rt.IPAddress, rt.UserAgent, rt.ExpiresAt, rt.CreatedAt, rt.Revoked).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.StoreRefreshToken(context.Background(), rt))
	require.NoError(t, mock.ExpectationsWereMet())
}
