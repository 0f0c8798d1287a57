package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents different types of errors
type ErrorCode string

const (
	// Local validation errors
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound       ErrorCode = "WATCHLIST_NOT_FOUND"
	ErrCodeNameConflict   ErrorCode = "WATCHLIST_NAME_CONFLICT"
	ErrCodeDuplicateStock ErrorCode = "DUPLICATE_STOCK"
	ErrCodePartialFailure ErrorCode = "PARTIAL_FAILURE"

	// External service errors
	ErrCodeNetwork   ErrorCode = "NETWORK_ERROR"
	ErrCodeProvider  ErrorCode = "PROVIDER_ERROR"
	ErrCodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeStorage   ErrorCode = "STORAGE_ERROR"
)

// AppError represents an application error with additional context
type AppError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Cause     error     `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new application error
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Newf creates a new application error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a code and message, keeping the cause
// reachable through errors.Unwrap.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:      code,
		Message:   message,
		Cause:     err,
		Timestamp: time.Now(),
	}
}

// CodeOf extracts the error code from an error chain. Plain errors report
// an empty code.
func CodeOf(err error) ErrorCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ""
}

// GetAppError extracts an AppError from an error chain
func GetAppError(err error) *AppError {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr
		}
		err = unwrapError(err)
	}
	return nil
}

func unwrapError(err error) error {
	type unwrapper interface {
		Unwrap() error
	}
	if u, ok := err.(unwrapper); ok {
		return u.Unwrap()
	}
	return nil
}

// IsNotFound reports whether err is a watchlist-not-found error.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// IsNameConflict reports whether err is a duplicate-watchlist-name error.
func IsNameConflict(err error) bool {
	return CodeOf(err) == ErrCodeNameConflict
}

// IsDuplicateStock reports whether err is a duplicate-symbol error.
func IsDuplicateStock(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateStock
}

// IsRateLimit reports whether err is a provider quota error.
func IsRateLimit(err error) bool {
	return CodeOf(err) == ErrCodeRateLimit
}

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool {
	return CodeOf(err) == ErrCodeNetwork
}

// IsStorage reports whether err is a persistence failure.
func IsStorage(err error) bool {
	return CodeOf(err) == ErrCodeStorage
}
