// Package errors provides custom error types for the Nestegg API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & identity errors.
var (
	ErrNotAuthenticated   = &AppError{Code: "NOT_AUTHENTICATED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrDuplicateEmail     = &AppError{Code: "DUPLICATE_EMAIL", Message: "An account with this email already exists", StatusCode: http.StatusConflict}
	ErrIdentityNotFound   = &AppError{Code: "IDENTITY_NOT_FOUND", Message: "Identity not found", StatusCode: http.StatusNotFound}
)

// Profile errors. Creation and fetch failures are distinct so callers can
// detect the partial-success state where an identity exists without a
// profile record and retry the profile write.
var (
	ErrProfileCreateFailed = &AppError{Code: "PROFILE_CREATE_FAILED", Message: "Unable to create profile", StatusCode: http.StatusInternalServerError}
	ErrProfileFetchFailed  = &AppError{Code: "PROFILE_FETCH_FAILED", Message: "Unable to fetch profile", StatusCode: http.StatusInternalServerError}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrDecodeFailed   = &AppError{Code: "DECODE_FAILED", Message: "Stored record could not be decoded", StatusCode: http.StatusInternalServerError}
	ErrPersistence    = &AppError{Code: "PERSISTENCE_FAILED", Message: "Storage operation failed", StatusCode: http.StatusInternalServerError}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Investment errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
)

// Market-data errors. Malformed URL, non-2xx status, and undecodable payload
// all collapse to this one signal.
var (
	ErrQuotesUnavailable = &AppError{Code: "QUOTES_UNAVAILABLE", Message: "Historical market data unavailable", StatusCode: http.StatusBadGateway}
)
