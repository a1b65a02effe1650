package postgres

import (
	"context"
	"fmt"

	"github.com/gatewarden/auth-service/internal/auth/domain"
)

type APIKeyRepository struct {
	db DBTX
}

func NewAPIKeyRepository(db DBTX) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

func (r *APIKeyRepository) Create(ctx context.Context, key *domain.APIKey) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO api_keys (id, user_id, name, key_hash, key_prefix, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, key.ID, key.UserID, key.Name, key.KeyHash, key.KeyPrefix, key.IsActive, key.CreatedAt)

	return err
}

func (r *APIKeyRepository) FindActiveByPrefix(ctx context.Context, prefix string) ([]domain.APIKey, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, key_hash, key_prefix, is_active, last_used_at, created_at
		FROM api_keys
		WHERE key_prefix = $1 AND is_active = TRUE
	`, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to find api keys by prefix: %w", err)
	}
	defer rows.Close()

	var keys []domain.APIKey
	for rows.Next() {
		var key domain.APIKey
		if err := rows.Scan(&key.ID, &key.UserID, &key.Name, &key.KeyHash,
			&key.KeyPrefix, &key.IsActive, &key.LastUsedAt, &key.CreatedAt); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func (r *APIKeyRepository) FindByUser(ctx context.Context, userID string) ([]domain.APIKey, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, key_hash, key_prefix, is_active, last_used_at, created_at
		FROM api_keys
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find api keys by user: %w", err)
	}
	defer rows.Close()

	var keys []domain.APIKey
	for rows.Next() {
		var key domain.APIKey
		if err := rows.Scan(&key.ID, &key.UserID, &key.Name, &key.KeyHash,
			&key.KeyPrefix, &key.IsActive, &key.LastUsedAt, &key.CreatedAt); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// Deactivate scopes the update to the owner so a foreign key id reports the
// same result as a missing one.
func (r *APIKeyRepository) Deactivate(ctx context.Context, id, userID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE api_keys SET is_active = FALSE WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *APIKeyRepository) TouchLastUsed(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE api_keys SET last_used_at = now() WHERE id = $1
	`, id)

	return err
}
