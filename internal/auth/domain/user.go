package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LockedUntil  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Locked reports whether the account is currently locked. A LockedUntil
// in the past counts as unlocked; the record is only ever annotated,
// never cleared.
func (u *User) Locked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}

type LoginAttempt struct {
	ID         string
	Identifier string
	IPAddress  string
	Success    bool
	CreatedAt  time.Time
}
