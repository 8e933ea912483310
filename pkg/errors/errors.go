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

	// Discovery errors (rules directory traversal)
	ErrDiscoveryRoot ErrorCode = "DISCOVERY_ROOT"
	ErrDiscoveryScan ErrorCode = "DISCOVERY_SCAN"

	// Extraction errors (rule document parsing)
	ErrExtractionParse ErrorCode = "EXTRACTION_PARSE"

	// Configuration errors
	ErrConfigLoad        ErrorCode = "CONFIG_LOAD"
	ErrConfigCompression ErrorCode = "CONFIG_COMPRESSION"

	// Codec errors (binary package encode/decode)
	ErrCodecDecode    ErrorCode = "CODEC_DECODE"
	ErrCodecTruncated ErrorCode = "CODEC_TRUNCATED"

	// Compression errors
	ErrCompress   ErrorCode = "COMPRESS"
	ErrDecompress ErrorCode = "DECOMPRESS"

	// FileSystem errors
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// RulepackError represents a structured error with code and details
type RulepackError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RulepackError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RulepackError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RulepackError) Is(target error) bool {
	var targetErr *RulepackError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RulepackError with the given code and message
func New(code ErrorCode, message string) *RulepackError {
	return &RulepackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RulepackError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RulepackError {
	return &RulepackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RulepackError
func Wrap(err error, code ErrorCode, message string) *RulepackError {
	if err == nil {
		return nil
	}
	return &RulepackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RulepackError {
	if err == nil {
		return nil
	}
	return &RulepackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RulepackError) WithDetail(key string, value interface{}) *RulepackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var rpErr *RulepackError
	if errors.As(err, &rpErr) {
		return rpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RulepackError
func GetErrorCode(err error) ErrorCode {
	var rpErr *RulepackError
	if errors.As(err, &rpErr) {
		return rpErr.Code
	}
	return ErrUnknown
}
