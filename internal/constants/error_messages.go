package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeValidationFailed       = "VALIDATION_FAILED"
	ErrCodeUnderage               = "UNDERAGE"
	ErrCodeInvalidCredentials     = "INVALID_CREDENTIALS"
	ErrCodeAccountNotFound        = "ACCOUNT_NOT_FOUND"
	ErrCodeAccountNumberExhausted = "ACCOUNT_NUMBER_EXHAUSTED"
	ErrCodeInsufficientBalance    = "INSUFFICIENT_BALANCE"
	ErrCodeAmountOutOfRange       = "AMOUNT_OUT_OF_RANGE"
	ErrCodePINUnchanged           = "PIN_UNCHANGED"
	ErrCodeForbidden              = "FORBIDDEN"
	ErrCodeAdvisorNotConfigured   = "ADVISOR_NOT_CONFIGURED"
	ErrCodeAdvisorUnavailable     = "ADVISOR_UNAVAILABLE"
	ErrCodeInvalidRequestBody     = "INVALID_REQUEST_BODY"
	ErrCodeOperationFailed        = "OPERATION_FAILED"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

const (
	ErrMsgValidationFailed       = "request validation failed"
	ErrMsgUnderage               = "you must be at least 18 years old to open an account"
	ErrMsgInvalidCredentials     = "invalid account number or PIN"
	ErrMsgAccountNotFound        = "account not found"
	ErrMsgAccountNumberExhausted = "could not allocate a unique account number"
	ErrMsgInsufficientBalance    = "insufficient funds"
	ErrMsgAmountOutOfRange       = "amount is out of the allowed range"
	ErrMsgPINUnchanged           = "new PIN cannot be the same as the old PIN"
	ErrMsgForbidden              = "administrative access required"
	ErrMsgAdvisorNotConfigured   = "advisor API key is not configured"
	ErrMsgAdvisorUnavailable     = "advisor service is unavailable"
	ErrMsgInvalidRequestBody     = "failed to parse request body"
	ErrMsgOperationFailed        = "operation failed"
	ErrMsgInternalError          = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:       ErrMsgValidationFailed,
	ErrCodeUnderage:               ErrMsgUnderage,
	ErrCodeInvalidCredentials:     ErrMsgInvalidCredentials,
	ErrCodeAccountNotFound:        ErrMsgAccountNotFound,
	ErrCodeAccountNumberExhausted: ErrMsgAccountNumberExhausted,
	ErrCodeInsufficientBalance:    ErrMsgInsufficientBalance,
	ErrCodeAmountOutOfRange:       ErrMsgAmountOutOfRange,
	ErrCodePINUnchanged:           ErrMsgPINUnchanged,
	ErrCodeForbidden:              ErrMsgForbidden,
	ErrCodeAdvisorNotConfigured:   ErrMsgAdvisorNotConfigured,
	ErrCodeAdvisorUnavailable:     ErrMsgAdvisorUnavailable,
	ErrCodeInvalidRequestBody:     ErrMsgInvalidRequestBody,
	ErrCodeOperationFailed:        ErrMsgOperationFailed,
	ErrCodeInternalError:          ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeInvalidCredentials:
		return 401
	case ErrCodeForbidden:
		return 403
	case ErrCodeAccountNotFound:
		return 404
	case ErrCodeInsufficientBalance:
		return 409
	case ErrCodeValidationFailed, ErrCodeUnderage, ErrCodeAmountOutOfRange, ErrCodePINUnchanged:
		return 422
	case ErrCodeAdvisorUnavailable:
		return 502
	case ErrCodeAdvisorNotConfigured:
		return 503
	default:
		return 500
	}
}
