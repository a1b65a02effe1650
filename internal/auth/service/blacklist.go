package service

import (
	"sync"
	"time"
)

// TokenBlacklist is the in-memory revocation set for access tokens that were
// logged out before their natural expiry. An entry is only useful for the
// remaining lifetime of the token it shadows; lookups evict lazily and Sweep
// clears the rest.
//
// The set is local to one running instance. Multi-instance deployments need
// a shared store instead; that trade-off is deliberate here.
type TokenBlacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{entries: make(map[string]time.Time)}
}

// Add records the token as revoked until expiresAt. Tokens already past
// their expiry are not worth remembering.
func (b *TokenBlacklist) Add(token string, expiresAt time.Time) {
	if !expiresAt.After(time.Now()) {
		return
	}

	b.mu.Lock()
	b.entries[token] = expiresAt
	b.mu.Unlock()
}

// Contains reports whether the token is currently revoked. An entry past
// its expiry is evicted and reported as not revoked.
func (b *TokenBlacklist) Contains(token string) bool {
	b.mu.RLock()
	expiresAt, ok := b.entries[token]
	b.mu.RUnlock()

	if !ok {
		return false
	}

	if !expiresAt.After(time.Now()) {
		b.mu.Lock()
		delete(b.entries, token)
		b.mu.Unlock()
		return false
	}

	return true
}

// Sweep drops every expired entry and returns how many were removed. Safe
// to call on any schedule, including never.
func (b *TokenBlacklist) Sweep() int {
	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for token, expiresAt := range b.entries {
		if !expiresAt.After(now) {
			delete(b.entries, token)
			removed++
		}
	}

	return removed
}

// Len reports the current number of entries, expired or not.
func (b *TokenBlacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}
