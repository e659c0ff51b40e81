package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketAllow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	// The full burst passes immediately.
	for i := 0; i < 10; i++ {
		ok, _, _ := bucket.allow()
		assert.True(t, ok, "request %d should be allowed", i+1)
	}

	ok, remaining, resetAt := bucket.allow()
	assert.False(t, ok, "request past the burst should be denied")
	assert.Zero(t, remaining)
	assert.True(t, resetAt.After(time.Now()))
}

func TestTokenBucketRefill(t *testing.T) {
	bucket := newTokenBucket(2, 50.0) // refills fast enough to test without long sleeps

	for i := 0; i < 2; i++ {
		bucket.allow()
	}
	ok, _, _ := bucket.allow()
	require.False(t, ok)

	time.Sleep(50 * time.Millisecond)

	ok, _, _ = bucket.allow()
	assert.True(t, ok, "request should be allowed after refill")
}

func TestLimiterAllowDefaultLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  5,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/cvs", "GET")
		assert.True(t, allowed)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/cvs", "GET")
	assert.False(t, allowed)
	assert.Positive(t, info.RetryAfter)
}

func TestLimiterEndpointOverride(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/import", Method: "POST", Limit: 20, Window: time.Hour, Burst: 2},
		},
	})

	allowed, info := limiter.Allow("1.2.3.4", "/import", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 20, info.Limit)

	limiter.Allow("1.2.3.4", "/import", "POST")
	allowed, _ = limiter.Allow("1.2.3.4", "/import", "POST")
	assert.False(t, allowed, "burst of 2 exhausted")

	// The method matters: a GET on the same path uses the default limit.
	allowed, info = limiter.Allow("1.2.3.4", "/import", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestLimiterPrefixMatch(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/cvs/", Method: "PUT", Limit: 3, Window: time.Minute, Burst: 3},
		},
	})

	id := "11111111-1111-1111-1111-111111111111"
	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/cvs/"+id, "PUT")
		assert.True(t, allowed)
	}
	allowed, _ := limiter.Allow("1.2.3.4", "/cvs/"+id, "PUT")
	assert.False(t, allowed)
}

func TestLimiterClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})

	allowed, _ := limiter.Allow("1.1.1.1", "/cvs", "GET")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("1.1.1.1", "/cvs", "GET")
	require.False(t, allowed)

	// A different client still has its full budget.
	allowed, _ = limiter.Allow("2.2.2.2", "/cvs", "GET")
	assert.True(t, allowed)
}

func TestLimiterHealthNeverLimited(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false, DefaultLimit: 1, DefaultWindow: time.Hour})

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/cvs", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiterConcurrentAccess(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			client := fmt.Sprintf("10.0.0.%d", n)
			for j := 0; j < 100; j++ {
				limiter.Allow(client, "/cvs", "GET")
			}
		}(i)
	}
	wg.Wait()
}

func TestDefaultConfigCoversWritePaths(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.Enabled)

	limiter := NewLimiter(cfg)
	_, info := limiter.Allow("1.2.3.4", "/import", "POST")
	assert.Equal(t, 20, info.Limit)
	_, info = limiter.Allow("1.2.3.4", "/cvs", "POST")
	assert.Equal(t, 60, info.Limit)
}
