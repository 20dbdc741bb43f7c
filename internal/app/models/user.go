package models

import (
	"errors"
	"math"
	"saude-connect/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

var (
	ErrUserRecordMissingID    = errors.New("user record has no numeric id")
	ErrUserRecordMissingEmail = errors.New("user record has no email")
	ErrUserRecordBadUserType  = errors.New("user record has an unknown user_type")
)

// UserRecord is the cached identity of the logged in user. Raw keeps the
// object exactly as the server sent it so extra profile fields survive.
type UserRecord struct {
	ID       int64           `json:"id"`
	Email    string          `json:"email"`
	UserType string          `json:"user_type"`
	Name     string          `json:"name,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	Raw      json.RawMessage `json:"-"`
}

// ParseUserRecord decodes data and checks it carries an integral id, a
// non-empty email and a known user_type.
func ParseUserRecord(data []byte) (*UserRecord, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, ErrUserRecordMissingID
	}

	id, ok := fields["id"].(float64)
	if !ok || id != math.Trunc(id) {
		return nil, ErrUserRecordMissingID
	}
	email, _ := fields["email"].(string)
	if email == "" {
		return nil, ErrUserRecordMissingEmail
	}
	userType, _ := fields["user_type"].(string)
	if !constvars.ValidUserTypes[userType] {
		return nil, ErrUserRecordBadUserType
	}

	name, _ := fields["name"].(string)
	phone, _ := fields["phone"].(string)

	raw := make(json.RawMessage, len(data))
	copy(raw, data)

	return &UserRecord{
		ID:       int64(id),
		Email:    email,
		UserType: userType,
		Name:     name,
		Phone:    phone,
		Raw:      raw,
	}, nil
}

// Fields returns the record as a generic map, built from Raw when present.
func (u *UserRecord) Fields() (map[string]interface{}, error) {
	data := []byte(u.Raw)
	if len(data) == 0 {
		var err error
		data, err = json.Marshal(u)
		if err != nil {
			return nil, err
		}
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (u *UserRecord) IsPatient() bool {
	return u.UserType == constvars.UserTypePatient
}

func (u *UserRecord) IsProfessional() bool {
	return u.UserType == constvars.UserTypeProfessional
}

func (u *UserRecord) IsAdmin() bool {
	return u.UserType == constvars.UserTypeAdmin
}
