package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatewarden/auth-service/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

type BlockedIPRepository struct {
	db DBTX
}

func NewBlockedIPRepository(db DBTX) *BlockedIPRepository {
	return &BlockedIPRepository{db: db}
}

func (r *BlockedIPRepository) GetByIP(ctx context.Context, ip string) (*domain.BlockedIP, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, ip_address, reason, is_permanent, expires_at, created_at
		FROM blocked_ips
		WHERE ip_address = $1
		LIMIT 1;
	`, ip)

	var blocked domain.BlockedIP
	err := row.Scan(&blocked.ID, &blocked.IPAddress, &blocked.Reason,
		&blocked.IsPermanent, &blocked.ExpiresAt, &blocked.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blocked ip: %w", err)
	}

	return &blocked, nil
}

func (r *BlockedIPRepository) Upsert(ctx context.Context, blocked *domain.BlockedIP) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO blocked_ips (id, ip_address, reason, is_permanent, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (ip_address)
		DO UPDATE SET
			reason = EXCLUDED.reason,
			is_permanent = EXCLUDED.is_permanent,
			expires_at = EXCLUDED.expires_at
	`, blocked.ID, blocked.IPAddress, blocked.Reason, blocked.IsPermanent, blocked.ExpiresAt, blocked.CreatedAt)

	return err
}

func (r *BlockedIPRepository) Delete(ctx context.Context, ip string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM blocked_ips WHERE ip_address = $1
	`, ip)

	return err
}

func (r *BlockedIPRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM blocked_ips
		WHERE is_permanent = FALSE AND expires_at IS NOT NULL AND expires_at < $1
	`, now)

	return err
}
