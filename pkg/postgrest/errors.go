package postgrest

import (
	"errors"
	"fmt"
)

const (
	StatusOK           = 200
	StatusCreated      = 201
	StatusNoContent    = 204
	StatusUnauthorized = 401
	StatusNotFound     = 404
	StatusConflict     = 409
)

var (
	ErrNotConfigured = errors.New("NOT_CONFIGURED")
	ErrUnauthorized  = errors.New("UNAUTHORIZED")
	ErrConflict      = errors.New("CONFLICT")
)

// Error carries the PostgREST status and error payload for statuses
// that have no dedicated sentinel.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("postgrest: status %d: %s", e.StatusCode, e.Message)
}

func mapStatusToError(statusCode int, message string) error {
	switch statusCode {
	case StatusUnauthorized:
		return ErrUnauthorized
	case StatusConflict:
		return ErrConflict
	default:
		return &Error{StatusCode: statusCode, Message: message}
	}
}
