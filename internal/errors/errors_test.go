package errors

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusErrorFormatting(t *testing.T) {
	err := New(ErrCodeParseEmpty, "nothing parsed")
	assert.Equal(t, "PARSE_EMPTY: nothing parsed", err.Error())

	wrapped := Wrap(fmt.Errorf("read: broken pipe"), ErrCodeScrapeIO, "session failed")
	assert.Equal(t, "SCRAPE_IO: session failed (caused by: read: broken pipe)", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "read: broken pipe")
}

func TestGetCodeUnwraps(t *testing.T) {
	inner := ScrapeTimeout(20 * time.Second)
	outer := fmt.Errorf("update failed: %w", inner)

	assert.Equal(t, ErrCodeScrapeTimeout, GetCode(outer))
	assert.True(t, Is(outer, ErrCodeScrapeTimeout))
	assert.False(t, Is(outer, ErrCodeParseEmpty))
	assert.Equal(t, ErrorCode(""), GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
}

func TestConstructorDetails(t *testing.T) {
	err := ParseEmpty("raw preview text")
	assert.Equal(t, "raw preview text", err.Details["preview"])

	timeoutErr := ScrapeTimeout(20 * time.Second)
	assert.Equal(t, "20s", timeoutErr.Details["timeout"])

	cacheErr := CacheIO("/tmp/usage.json", fmt.Errorf("permission denied"))
	assert.Equal(t, "/tmp/usage.json", cacheErr.Details["path"])
	assert.Equal(t, ErrCodeCacheIO, cacheErr.Code)
}
