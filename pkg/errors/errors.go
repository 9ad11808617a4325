package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// Host runtime errors
	ErrArgsInvalid  ErrorCode = "ARGS_INVALID"
	ErrOutputRender ErrorCode = "OUTPUT_RENDER"
)

// EnsureError represents a structured error with code and details
type EnsureError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EnsureError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EnsureError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EnsureError) Is(target error) bool {
	var targetErr *EnsureError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EnsureError with the given code and message
func New(code ErrorCode, message string) *EnsureError {
	return &EnsureError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EnsureError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EnsureError {
	return &EnsureError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EnsureError
func Wrap(err error, code ErrorCode, message string) *EnsureError {
	if err == nil {
		return nil
	}
	return &EnsureError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnsureError {
	if err == nil {
		return nil
	}
	return &EnsureError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EnsureError) WithDetail(key string, value interface{}) *EnsureError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// UserMessage returns the text of err without code prefixes, for output
// read by people or by the host runtime
func UserMessage(err error) string {
	ensureErr, ok := err.(*EnsureError)
	if !ok {
		return err.Error()
	}
	if ensureErr.Wrapped == nil {
		return ensureErr.Message
	}
	return ensureErr.Message + ": " + UserMessage(ensureErr.Wrapped)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ensureErr *EnsureError
	if errors.As(err, &ensureErr) {
		return ensureErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EnsureError
func GetErrorCode(err error) ErrorCode {
	var ensureErr *EnsureError
	if errors.As(err, &ensureErr) {
		return ensureErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an EnsureError
func GetErrorDetails(err error) map[string]interface{} {
	var ensureErr *EnsureError
	if errors.As(err, &ensureErr) {
		return ensureErr.Details
	}
	return nil
}
