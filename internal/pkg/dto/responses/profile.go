package responses

import "github.com/goccy/go-json"

// UserProfile is the session record with the server profile laid over it.
// Fields holds every merged key; the typed fields are read from it.
type UserProfile struct {
	ID        int64                  `json:"id"`
	ProfileID int64                  `json:"profile_id,omitempty"`
	Email     string                 `json:"email"`
	UserType  string                 `json:"user_type"`
	Name      string                 `json:"name,omitempty"`
	Fields    map[string]interface{} `json:"-"`
}

func (p UserProfile) MarshalJSON() ([]byte, error) {
	if p.Fields != nil {
		return json.Marshal(p.Fields)
	}
	type plain UserProfile
	return json.Marshal(plain(p))
}
