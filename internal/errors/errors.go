package errors

import (
	"fmt"
)

// ErrorCode identifies a failure condition that callers can switch on.
type ErrorCode string

const (
	// Scraper errors
	ErrCodeClaudeNotFound ErrorCode = "CLAUDE_NOT_FOUND"
	ErrCodePTYUnsupported ErrorCode = "PTY_UNSUPPORTED"
	ErrCodeScrapeTimeout  ErrorCode = "SCRAPE_TIMEOUT"
	ErrCodeScrapeIO       ErrorCode = "SCRAPE_IO"
	ErrCodeParseEmpty     ErrorCode = "PARSE_EMPTY"

	// Local I/O and configuration errors
	ErrCodeCacheIO       ErrorCode = "CACHE_IO"
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// StatusError is a structured error carrying a code, a human-readable
// message and optional key/value details for diagnostics.
type StatusError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *StatusError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *StatusError) WithDetail(key string, value interface{}) *StatusError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new StatusError.
func New(code ErrorCode, message string) *StatusError {
	return &StatusError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a StatusError.
func Wrap(err error, code ErrorCode, message string) *StatusError {
	return &StatusError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks whether an error carries a specific code.
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, unwrapping as needed.
func GetCode(err error) ErrorCode {
	for err != nil {
		if se, ok := err.(*StatusError); ok {
			return se.Code
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = unwrapper.Unwrap()
	}
	return ""
}
