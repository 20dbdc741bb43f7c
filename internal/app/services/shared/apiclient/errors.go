package apiclient

import (
	"errors"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/exceptions"
	"strings"

	"github.com/tidwall/gjson"
)

var serverMessageKeys = []string{"message", "error", "detail"}

// ServerMessage pulls the human readable message out of an error body.
func ServerMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, key := range serverMessageKeys {
		result := gjson.GetBytes(body, key)
		if result.Type == gjson.String && strings.TrimSpace(result.Str) != "" {
			return strings.TrimSpace(result.Str)
		}
	}
	return ""
}

func containsAny(message string, markers []string) bool {
	lowered := strings.ToLower(message)
	for _, marker := range markers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

func MentionsEmail(message string) bool {
	return containsAny(message, constvars.EmailFieldMarkers)
}

// IsDuplicateEmailMessage is true for messages such as "Email já cadastrado".
// A clash on another field ("CPF já existe") is not a duplicate email.
func IsDuplicateEmailMessage(message string) bool {
	return MentionsEmail(message) && containsAny(message, constvars.DuplicateEmailMarkers)
}

// isDuplicateEmail treats a bare 409 as a duplicate email. A 409 whose
// message names some other field keeps the server's message.
func isDuplicateEmail(statusCode int, message string) bool {
	if statusCode == constvars.StatusConflict {
		return message == "" || MentionsEmail(message)
	}
	return statusCode >= 400 && statusCode < 500 && IsDuplicateEmailMessage(message)
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

// classifyFailure maps a non-2xx answer to the error returned to callers.
// A nil result means the route policy absorbs the failure as an empty result.
func classifyFailure(route Route, statusCode int, body []byte) error {
	if statusCode == constvars.StatusNotFound && route.EmptyOnNotFound {
		return nil
	}
	if route.EmptyOnFailure {
		return nil
	}

	message := ServerMessage(body)
	var cause error
	if message != "" {
		cause = errors.New(message)
	}
	clientMessage := orDefault(message, route.Fallback)
	isClientError := statusCode >= 400 && statusCode < 500

	switch route.Policy {
	case PolicyLogin:
		switch statusCode {
		case constvars.StatusUnauthorized:
			return exceptions.ErrInvalidCredentials(cause, orDefault(message, constvars.ErrClientInvalidCredentials))
		case constvars.StatusBadRequest:
			return exceptions.ErrMalformedLogin(cause, orDefault(message, constvars.ErrClientMalformedLogin))
		default:
			return exceptions.ErrLoginServer(cause, statusCode, clientMessage)
		}

	case PolicyRegistration:
		if isDuplicateEmail(statusCode, message) {
			return exceptions.ErrEmailAlreadyInUse(cause, statusCode)
		}
		if isClientError {
			return exceptions.ErrBackendValidation(cause, route.Operation, statusCode, clientMessage)
		}
		return exceptions.ErrBackendServer(cause, route.Operation, statusCode, clientMessage)

	case PolicySearch:
		if statusCode == constvars.StatusNotFound {
			return exceptions.ErrNotFound(cause, route.Operation, orDefault(message, orDefault(route.NotFoundMessage, constvars.ErrClientNotFound)))
		}
		return exceptions.ErrSearch(cause, route.Operation, statusCode, clientMessage)
	}

	switch {
	case statusCode == constvars.StatusNotFound:
		return exceptions.ErrNotFound(cause, route.Operation, orDefault(message, orDefault(route.NotFoundMessage, constvars.ErrClientNotFound)))
	case statusCode == constvars.StatusUnauthorized:
		return exceptions.ErrSessionRejected(cause, route.Operation, orDefault(message, constvars.ErrClientAuthRequired))
	case statusCode == constvars.StatusForbidden:
		return exceptions.ErrForbidden(cause, route.Operation, orDefault(message, constvars.ErrClientForbidden))
	case isClientError:
		return exceptions.ErrBackendValidation(cause, route.Operation, statusCode, clientMessage)
	default:
		return exceptions.ErrBackendServer(cause, route.Operation, statusCode, clientMessage)
	}
}
