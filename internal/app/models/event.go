package models

import "time"

// ClientEvent is published after a booking side operation succeeds.
type ClientEvent struct {
	Type       string                 `json:"type"`
	RequestID  string                 `json:"request_id"`
	UserID     int64                  `json:"user_id,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}
