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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Variant errors
	ErrUnknownVariant ErrorCode = "UNKNOWN_VARIANT"

	// Tree errors
	ErrTreeInvalid  ErrorCode = "TREE_INVALID"
	ErrExportFormat ErrorCode = "EXPORT_FORMAT"

	// Help errors
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"
)

// PatternsError represents a structured error with code and details
type PatternsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PatternsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PatternsError) Unwrap() error {
	return e.Wrapped
}

// Is matches another PatternsError by code
func (e *PatternsError) Is(target error) bool {
	var targetErr *PatternsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PatternsError with the given code and message
func New(code ErrorCode, message string) *PatternsError {
	return &PatternsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PatternsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PatternsError {
	return &PatternsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PatternsError
func Wrap(err error, code ErrorCode, message string) *PatternsError {
	if err == nil {
		return nil
	}
	return &PatternsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PatternsError {
	if err == nil {
		return nil
	}
	return &PatternsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PatternsError) WithDetail(key string, value interface{}) *PatternsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pErr *PatternsError
	if errors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}

// IsConfigurationError reports whether err stems from bad configuration:
// an unknown discriminant or a config file that failed to load or validate.
func IsConfigurationError(err error) bool {
	switch GetErrorCode(err) {
	case ErrUnknownVariant, ErrConfigLoad, ErrConfigParse, ErrConfigValid:
		return true
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PatternsError
func GetErrorCode(err error) ErrorCode {
	var pErr *PatternsError
	if errors.As(err, &pErr) {
		return pErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PatternsError
func GetErrorDetails(err error) map[string]interface{} {
	var pErr *PatternsError
	if errors.As(err, &pErr) {
		return pErr.Details
	}
	return nil
}
