package errors

import (
	"fmt"
	"time"
)

// ClaudeNotFound creates the error reported when the claude binary cannot
// be located anywhere on the host.
func ClaudeNotFound() *StatusError {
	return New(ErrCodeClaudeNotFound,
		"claude CLI not found; install Claude Code first (https://claude.ai/code)")
}

// PTYUnsupported creates the error for hosts without pseudo-terminal support.
func PTYUnsupported(err error) *StatusError {
	return Wrap(err, ErrCodePTYUnsupported, "pseudo-terminal facility unavailable on this host")
}

// ScrapeTimeout creates the error reported when the usage output never
// satisfied the completion predicate within the deadline.
func ScrapeTimeout(timeout time.Duration) *StatusError {
	return New(ErrCodeScrapeTimeout,
		fmt.Sprintf("usage output did not complete within %s", timeout)).
		WithDetail("timeout", timeout.String())
}

// ScrapeIO wraps a low-level spawn or terminal I/O failure.
func ScrapeIO(err error) *StatusError {
	return Wrap(err, ErrCodeScrapeIO, "failed to drive claude session")
}

// ParseEmpty creates the soft failure for captures that yielded no fields.
// The preview is bounded by the caller; it is stored as a detail so error
// reporting can show it without dumping the whole capture.
func ParseEmpty(preview string) *StatusError {
	return New(ErrCodeParseEmpty, "could not parse usage data from captured output").
		WithDetail("preview", preview)
}

// CacheIO wraps a cache file read/write failure.
func CacheIO(path string, err error) *StatusError {
	return Wrap(err, ErrCodeCacheIO, fmt.Sprintf("cache file error: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error.
func ConfigInvalid(reason string) *StatusError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
