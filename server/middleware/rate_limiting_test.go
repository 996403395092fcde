package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBlocksAfterMaxRequests(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	config := RateLimitConfig{
		MaxRequests:   3,
		TimeWindow:    time.Minute,
		BlockDuration: time.Minute,
	}

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.isAllowed("1.2.3.4:/login", config), "request %d should pass", i+1)
	}

	assert.False(t, limiter.isAllowed("1.2.3.4:/login", config))
	assert.False(t, limiter.isAllowed("1.2.3.4:/login", config))

	// A different client is unaffected.
	assert.True(t, limiter.isAllowed("5.6.7.8:/login", config))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	config := RateLimitConfig{
		MaxRequests:   1,
		TimeWindow:    10 * time.Millisecond,
		BlockDuration: 10 * time.Millisecond,
	}

	assert.True(t, limiter.isAllowed("1.2.3.4:/login", config))
	assert.False(t, limiter.isAllowed("1.2.3.4:/login", config))

	time.Sleep(20 * time.Millisecond)

	assert.True(t, limiter.isAllowed("1.2.3.4:/login", config))
}
