package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"saude-connect/internal/pkg/constvars"
)

// Kind tags every failure surfaced by the client so callers can branch on
// the class of error without matching strings.
type Kind string

const (
	KindAuthRequired Kind = "AUTH_REQUIRED"
	KindAuth         Kind = "AUTH"
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindSearch       Kind = "SEARCH"
	KindServer       Kind = "SERVER"
)

// Reasons refine KindAuth failures.
const (
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonMalformedRequest   = "malformed_request"
	ReasonServerError        = "server_error"
	ReasonForbidden          = "forbidden"
)

type CustomError struct {
	Kind          Kind     `json:"kind"`
	Reason        string   `json:"reason,omitempty"`
	StatusCode    int      `json:"status_code"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	cause         error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	customError := &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		cause:         err,
	}
	if err != nil {
		customError.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customError
}

// KindOf returns the Kind carried by err, or KindServer for errors that did
// not originate in this package.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.Kind
	}
	return KindServer
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ClientMessage returns the human-readable message meant for end users.
func ClientMessage(err error) string {
	if err == nil {
		return ""
	}
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.ClientMessage
	}
	return constvars.ErrClientCannotProcessRequest
}

// ReasonOf returns the refinement attached to an auth failure.
func ReasonOf(err error) string {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.Reason
	}
	return ""
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
