package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBlacklist_AddAndContains(t *testing.T) {
	b := NewTokenBlacklist()

	b.Add("token-1", time.Now().Add(time.Minute))

	assert.True(t, b.Contains("token-1"))
	assert.False(t, b.Contains("token-2"))
}

func TestTokenBlacklist_IgnoresAlreadyExpired(t *testing.T) {
	b := NewTokenBlacklist()

	b.Add("stale", time.Now().Add(-time.Second))

	assert.False(t, b.Contains("stale"))
	assert.Equal(t, 0, b.Len())
}

func TestTokenBlacklist_LazyEviction(t *testing.T) {
	b := NewTokenBlacklist()

	b.Add("short-lived", time.Now().Add(30*time.Millisecond))
	assert.True(t, b.Contains("short-lived"))

	time.Sleep(50 * time.Millisecond)

	// Past expiry the lookup reports false and drops the entry.
	assert.False(t, b.Contains("short-lived"))
	assert.Equal(t, 0, b.Len())
}

func TestTokenBlacklist_Sweep(t *testing.T) {
	b := NewTokenBlacklist()

	b.Add("live", time.Now().Add(time.Minute))
	b.Add("dying-1", time.Now().Add(10*time.Millisecond))
	b.Add("dying-2", time.Now().Add(10*time.Millisecond))

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, 2, b.Sweep())
	assert.Equal(t, 1, b.Len())
	assert.True(t, b.Contains("live"))

	// Sweep on a clean set is a no-op.
	assert.Equal(t, 0, b.Sweep())
}

func TestTokenBlacklist_ConcurrentAccess(t *testing.T) {
	b := NewTokenBlacklist()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := fmt.Sprintf("token-%d", i)
			b.Add(token, time.Now().Add(time.Minute))
			b.Contains(token)
			b.Sweep()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, b.Len())
}
