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

	// Pattern errors
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Desktop entry errors
	ErrEntryParse  ErrorCode = "ENTRY_PARSE"
	ErrEntryLookup ErrorCode = "ENTRY_LOOKUP"
	ErrExecFailure ErrorCode = "EXEC_FAILURE"

	// Selection errors
	ErrSelector ErrorCode = "SELECTOR"
)

// ResolvrError represents a structured error with code and details
type ResolvrError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ResolvrError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ResolvrError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ResolvrError) Is(target error) bool {
	var targetErr *ResolvrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ResolvrError with the given code and message
func New(code ErrorCode, message string) *ResolvrError {
	return &ResolvrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ResolvrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ResolvrError {
	return &ResolvrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ResolvrError
func Wrap(err error, code ErrorCode, message string) *ResolvrError {
	if err == nil {
		return nil
	}
	return &ResolvrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ResolvrError {
	if err == nil {
		return nil
	}
	return &ResolvrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ResolvrError) WithDetail(key string, value interface{}) *ResolvrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var resolvrErr *ResolvrError
	if errors.As(err, &resolvrErr) {
		return resolvrErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ResolvrError
func GetErrorCode(err error) ErrorCode {
	var resolvrErr *ResolvrError
	if errors.As(err, &resolvrErr) {
		return resolvrErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ResolvrError
func GetErrorDetails(err error) map[string]interface{} {
	var resolvrErr *ResolvrError
	if errors.As(err, &resolvrErr) {
		return resolvrErr.Details
	}
	return nil
}
