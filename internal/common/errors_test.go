package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelHelpers(t *testing.T) {
	err := NotFoundError("tool '%s'", "get_feed")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "get_feed")

	err = InvalidInputError("argument '%s'", "feed_id")
	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsNotFound(err))

	// Wrapping preserves the sentinel
	wrapped := fmt.Errorf("dispatch: %w", err)
	assert.True(t, IsInvalidInput(wrapped))
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("velocity.username", "value is required")
	assert.True(t, IsConfigError(err))
	assert.Equal(t, "invalid configuration for velocity.username: value is required", err.Error())
	assert.False(t, IsAuthError(err))
}

func TestAuthError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewAuthError("portal unreachable", cause)
	assert.True(t, IsAuthError(err))
	assert.Contains(t, err.Error(), "token generation failed: portal unreachable")
	assert.ErrorIs(t, err, cause, "The cause should stay reachable through Unwrap")

	bare := NewAuthError("invalid credentials", nil)
	assert.Equal(t, "token generation failed: invalid credentials", bare.Error())
}

func TestRequestError(t *testing.T) {
	err := NewRequestError(502, "bad gateway")
	assert.True(t, IsRequestError(err))
	assert.Equal(t, "request failed with status 502: bad gateway", err.Error())

	var reqErr RequestError
	assert.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 502, reqErr.StatusCode)
	assert.Equal(t, "bad gateway", reqErr.Body)
}
