package responses

import "github.com/goccy/go-json"

type Login struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

type Registration struct {
	Message string          `json:"message,omitempty"`
	ID      int64           `json:"id,omitempty"`
	UserID  int64           `json:"user_id,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
}
