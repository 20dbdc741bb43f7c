package models

import "time"

type Session struct {
	Token string
	User  *UserRecord
}

// TokenClaims is what the bearer token says about its holder. It is read
// without verifying the signature and is only fit for display.
type TokenClaims struct {
	UserID    int64                  `json:"user_id,omitempty"`
	UserType  string                 `json:"user_type,omitempty"`
	ExpiresAt *time.Time             `json:"expires_at,omitempty"`
	IssuedAt  *time.Time             `json:"issued_at,omitempty"`
	Claims    map[string]interface{} `json:"claims"`
}

func (c *TokenClaims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}
