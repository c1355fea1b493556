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

	// Precondition errors
	ErrPrecondition ErrorCode = "PRECONDITION"
	ErrSourceRoot   ErrorCode = "SOURCE_ROOT"
	ErrTargetRoot   ErrorCode = "TARGET_ROOT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Install errors
	ErrRemoveFailed  ErrorCode = "REMOVE_FAILED"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"

	// Check errors
	ErrSyntaxParse ErrorCode = "SYNTAX_PARSE"
)

// SublinkError represents a structured error with code and details
type SublinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SublinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SublinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SublinkError) Is(target error) bool {
	var targetErr *SublinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SublinkError with the given code and message
func New(code ErrorCode, message string) *SublinkError {
	return &SublinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SublinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SublinkError {
	return &SublinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SublinkError
func Wrap(err error, code ErrorCode, message string) *SublinkError {
	if err == nil {
		return nil
	}
	return &SublinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SublinkError {
	if err == nil {
		return nil
	}
	return &SublinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SublinkError) WithDetail(key string, value interface{}) *SublinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var serr *SublinkError
	if errors.As(err, &serr) {
		return serr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// not a SublinkError
func GetErrorCode(err error) ErrorCode {
	var serr *SublinkError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return ErrUnknown
}
