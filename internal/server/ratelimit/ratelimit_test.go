package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_BurstThenDeny(t *testing.T) {
	b := newBucket(10, 1.0) // 10 tokens, 1 token per second

	for i := 0; i < 10; i++ {
		allowed, _, _ := b.take()
		require.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, remaining, resetTime := b.take()
	assert.False(t, allowed, "11th request should be denied")
	assert.Equal(t, 0, remaining)
	assert.True(t, resetTime.After(time.Now()))
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		b.take()
	}

	time.Sleep(1100 * time.Millisecond)

	allowed, _, _ := b.take()
	assert.True(t, allowed, "should allow after one token refills")

	allowed, _, _ = b.take()
	assert.False(t, allowed, "should deny after consuming refilled token")
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/resumes", "GET")
		require.True(t, allowed)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/resumes", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_SeparateClients(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/jobs", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/jobs", "GET")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.2", "/jobs", "GET")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/match", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.9": true},
		Blacklist:     map[string]bool{"10.0.0.6": true},
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("10.0.0.9", "/match", "POST")
		require.True(t, allowed, "whitelisted client is never limited")
	}

	allowed, _ := limiter.Allow("10.0.0.6", "/health", "POST")
	assert.False(t, allowed, "blacklisted client is always denied")
}

func TestLimiter_EndpointConfig(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/match", Method: "POST", Limit: 2, Window: time.Minute, Burst: 2},
		},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("127.0.0.1", "/match", "POST")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("127.0.0.1", "/match", "POST")
	assert.True(t, allowed)
	allowed, info := limiter.Allow("127.0.0.1", "/match", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)

	// The default limit still applies to other endpoints.
	allowed, _ = limiter.Allow("127.0.0.1", "/resumes", "GET")
	assert.True(t, allowed)
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			clientID := fmt.Sprintf("10.1.0.%d", n)
			for j := 0; j < 50; j++ {
				limiter.Allow(clientID, "/resumes", "GET")
			}
		}(i)
	}
	wg.Wait()
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/match", Method: "POST", Limit: 30},
		{Path: "/resumes/", Method: "DELETE", Limit: 100},
	}

	tests := []struct {
		name     string
		path     string
		method   string
		expected *int // expected Limit, nil means no match
	}{
		{name: "exact match", path: "/match", method: "POST", expected: intPtr(30)},
		{name: "prefix match", path: "/resumes/abc-123", method: "DELETE", expected: intPtr(100)},
		{name: "wrong method", path: "/match", method: "GET", expected: nil},
		{name: "no match", path: "/jobs", method: "GET", expected: nil},
		{name: "health unlimited", path: "/health", method: "GET", expected: intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, got.Limit)
		})
	}
}

func intPtr(n int) *int { return &n }
