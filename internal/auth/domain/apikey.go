package domain

import "time"

// APIKey stores only the bcrypt hash of the raw key. KeyPrefix is a short
// non-secret slice of the raw value kept in clear for candidate narrowing;
// it must never be used on its own to authorize anything.
type APIKey struct {
	ID         string
	UserID     string
	Name       string
	KeyHash    string
	KeyPrefix  string
	IsActive   bool
	LastUsedAt *time.Time
	CreatedAt  time.Time
}
