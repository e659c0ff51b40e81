// Package ratelimit provides per-client request limiting using token
// buckets, keyed by client IP, endpoint and method.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// tokenBucket refills at a steady rate up to a burst capacity.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() (ok bool, remaining int, resetAt time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens = min(float64(tb.capacity), tb.tokens+now.Sub(tb.lastRefill).Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		ok = true
	}

	remaining = int(tb.tokens)
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		resetAt = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		resetAt = now
	}
	return ok, remaining, resetAt
}

// EndpointConfig limits one endpoint. Paths ending in "/" are prefix-matched.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds the limiter configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	Endpoints     []EndpointConfig
}

// DefaultConfig returns the limits used in production: imports are the
// expensive path, writes are moderate, reads fall back to the default.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/import", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
			{Path: "/cvs", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
			{Path: "/cvs/", Method: "PUT", Limit: 120, Window: time.Minute, Burst: 20},
			{Path: "/cvs/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		},
	}
}

// Info reports the limit state of one decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages one token bucket per client+endpoint+method.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	config  *Config
}

// NewLimiter creates a limiter with the given configuration; nil means
// DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Limiter{
		buckets: make(map[string]*tokenBucket),
		config:  config,
	}
}

// Allow decides whether one request passes, consuming a token when it does.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	endpoint := l.match(path, method)
	if endpoint == nil {
		endpoint = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if endpoint.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	bucket := l.bucket(clientID+":"+path+":"+method, endpoint)
	allowed, remaining, resetAt := bucket.allow()

	info := Info{
		Allowed:   allowed,
		Limit:     endpoint.Limit,
		Remaining: remaining,
		ResetTime: resetAt,
	}
	if !allowed {
		info.RetryAfter = max(time.Until(resetAt), 0)
	}
	return allowed, info
}

// match finds the endpoint config for a request. The health check is never
// limited; exact path matches win over prefix matches.
func (l *Limiter) match(path, method string) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range l.config.Endpoints {
		ep := &l.config.Endpoints[i]
		if ep.Path == path && ep.Method == method {
			return ep
		}
	}
	for i := range l.config.Endpoints {
		ep := &l.config.Endpoints[i]
		if ep.Method == method && strings.HasSuffix(ep.Path, "/") && strings.HasPrefix(path, ep.Path) {
			return ep
		}
	}
	return nil
}

func (l *Limiter) bucket(key string, endpoint *EndpointConfig) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	burst := endpoint.Burst
	if burst <= 0 {
		burst = endpoint.Limit
	}
	b := newTokenBucket(burst, float64(endpoint.Limit)/endpoint.Window.Seconds())
	l.buckets[key] = b
	return b
}
