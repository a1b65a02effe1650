package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	SetLockedUntil(ctx context.Context, userID string, until time.Time) error

	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	// RevokeRefreshToken flips the revoked flag only if it is not already
	// set and reports whether this call won the transition. Concurrent
	// rotations of the same token race on this update; exactly one wins.
	RevokeRefreshToken(ctx context.Context, id string) (bool, error)
	GetActiveCountByUserID(ctx context.Context, userID string) (int, error)
	DeleteOldestByUserID(ctx context.Context, userID string) error

	RecordLoginAttempt(ctx context.Context, identifier, ip string, success bool) error
	CountRecentFailures(ctx context.Context, identifier, ip string, since time.Time) (int, error)
	DeleteLoginAttempts(ctx context.Context, identifier string) error
}

type APIKeyRepository interface {
	Create(ctx context.Context, key *APIKey) error
	FindActiveByPrefix(ctx context.Context, prefix string) ([]APIKey, error)
	FindByUser(ctx context.Context, userID string) ([]APIKey, error)
	// Deactivate soft-deletes the key only when it belongs to userID and
	// reports whether a row changed. Ownership is part of the predicate so
	// a miss does not reveal whether the id exists at all.
	Deactivate(ctx context.Context, id, userID string) (bool, error)
	TouchLastUsed(ctx context.Context, id string) error
}

type BlockedIPRepository interface {
	GetByIP(ctx context.Context, ip string) (*BlockedIP, error)
	Upsert(ctx context.Context, blocked *BlockedIP) error
	Delete(ctx context.Context, ip string) error
	DeleteExpired(ctx context.Context, now time.Time) error
}
