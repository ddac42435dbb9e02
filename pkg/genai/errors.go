package genai

import "errors"

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

const (
	ErrCodeNotConfigured = "NOT_CONFIGURED"
	ErrCodeInvalidKey    = "INVALID_API_KEY"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeBadPrompt     = "BAD_PROMPT"
	ErrCodeTimeout       = "TIMEOUT"
	ErrCodeServerError   = "SERVER_ERROR"
	ErrCodeEmptyResponse = "EMPTY_RESPONSE"
)

var (
	ErrNotConfigured = errors.New(ErrCodeNotConfigured)
	ErrInvalidKey    = errors.New(ErrCodeInvalidKey)
	ErrRateLimited   = errors.New(ErrCodeRateLimited)
	ErrBadPrompt     = errors.New(ErrCodeBadPrompt)
	ErrTimeout       = errors.New(ErrCodeTimeout)
	ErrServerError   = errors.New(ErrCodeServerError)
	ErrEmptyResponse = errors.New(ErrCodeEmptyResponse)
)

var statusErrorMap = map[int]error{
	StatusBadRequest:      ErrBadPrompt,
	StatusUnauthorized:    ErrInvalidKey,
	StatusForbidden:       ErrInvalidKey,
	StatusTooManyRequests: ErrRateLimited,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}
