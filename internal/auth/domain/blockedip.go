package domain

import "time"

// BlockedIP is keyed by IPAddress. A non-permanent entry past its expiry is
// logically unblocked even while the row still exists (lazy expiry).
type BlockedIP struct {
	ID          string
	IPAddress   string
	Reason      string
	IsPermanent bool
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

// Expired reports whether a temporary block has lapsed.
func (b *BlockedIP) Expired(now time.Time) bool {
	if b.IsPermanent {
		return false
	}
	return b.ExpiresAt == nil || !b.ExpiresAt.After(now)
}
