package dto

import "time"

type BlockIPInput struct {
	IPAddress   string `json:"ip_address"`
	Reason      string `json:"reason"`
	IsPermanent bool   `json:"is_permanent"`
	ExpiresIn   int    `json:"expires_in"` // seconds; ignored for permanent blocks
}

type BlockedIPOutput struct {
	IPAddress   string     `json:"ip_address"`
	Reason      string     `json:"reason,omitempty"`
	IsPermanent bool       `json:"is_permanent"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
