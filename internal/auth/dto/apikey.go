package dto

import "time"

type CreateAPIKeyInput struct {
	Name string `json:"name"`
}

// NewAPIKeyOutput carries the raw key. It is produced exactly once, at
// creation, and the raw value is never recoverable afterwards.
type NewAPIKeyOutput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

type APIKeyOutput struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"key_prefix"`
	IsActive   bool       `json:"is_active"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
