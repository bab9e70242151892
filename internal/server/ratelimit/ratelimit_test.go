package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(cfg *Config) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg)
	l.now = clock.now
	return l, clock
}

func TestTokenBucket_Take(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(3, 1.0, start)

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := bucket.take(start)
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 2-i, remaining)
	}

	allowed, _, full := bucket.take(start)
	assert.False(t, allowed)
	assert.Equal(t, start.Add(3*time.Second), full)

	allowed, _, _ = bucket.take(start.Add(time.Second))
	assert.True(t, allowed, "one token refills after a second")
}

func TestTokenBucket_CapacityCap(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(2, 10.0, start)

	_, remaining, _ := bucket.take(start.Add(time.Hour))
	assert.Equal(t, 1, remaining, "refill never exceeds capacity")
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/other", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", "/other", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 6*time.Second, info.RetryAfter)
}

func TestLimiter_Refill(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 60, DefaultWindow: time.Minute, EndpointConfigs: []EndpointConfig{
		{Path: "/predict", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1},
	}})
	defer l.Stop()

	allowed, _ := l.Allow("c", "/predict", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("c", "/predict", "POST")
	require.False(t, allowed)

	clock.advance(time.Second)
	allowed, _ = l.Allow("c", "/predict", "POST")
	assert.True(t, allowed)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer l.Stop()

	allowed, _ := l.Allow("a", "/model", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", "/model", "GET")
	assert.False(t, allowed)
	allowed, _ = l.Allow("b", "/model", "GET")
	assert.True(t, allowed)
}

func TestLimiter_PrefixRuleSharesBucket(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Minute, EndpointConfigs: []EndpointConfig{
		{Path: "/insights/", Method: "GET", Limit: 2, Window: time.Minute},
	}})
	defer l.Stop()

	allowed, _ := l.Allow("c", "/insights/roles", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", "/insights/degrees", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", "/insights/career-paths", "GET")
	assert.False(t, allowed)
}

func TestLimiter_WhitelistBlacklistDisabled(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/predict", "POST")
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow("10.0.0.2", "/predict", "POST")
	assert.False(t, allowed)

	off := NewLimiter(&Config{Enabled: false})
	defer off.Stop()
	for i := 0; i < 5; i++ {
		allowed, _ := off.Allow("x", "/retrain", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_UnlimitedHealth(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute, EndpointConfigs: DefaultEndpointConfigs()})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("c", "/health", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_RetrainIsStrict(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 1000, DefaultWindow: time.Minute, EndpointConfigs: DefaultEndpointConfigs()})
	defer l.Stop()

	allowed, _ := l.Allow("c", "/retrain", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("c", "/retrain", "POST")
	assert.True(t, allowed)
	allowed, info := l.Allow("c", "/retrain", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10*time.Minute, info.RetryAfter)
}

func TestLimiter_EvictIdle(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 5, DefaultWindow: time.Minute, IdleTTL: time.Hour})
	defer l.Stop()

	l.Allow("a", "/model", "GET")
	clock.advance(30 * time.Minute)
	l.Allow("b", "/model", "GET")
	clock.advance(45 * time.Minute)

	assert.Equal(t, 1, l.evictIdle())
	assert.Len(t, l.buckets, 1)
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})
	defer l.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("same", "/predict-batch", "POST"); ok {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/insights/", Method: "GET", Limit: 1},
		{Path: "/insights/career-paths", Method: "GET", Limit: 2},
		{Path: "/retrain", Method: "POST", Limit: 3},
	}

	tests := []struct {
		path, method string
		want         int
	}{
		{"/insights/career-paths", "GET", 2},
		{"/insights/roles", "GET", 1},
		{"/retrain", "POST", 3},
		{"/retrain", "GET", -1},
		{"/predict", "POST", -1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.want < 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Limit)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	env := map[string]string{
		"RATE_LIMIT_DEFAULT_LIMIT": "50",
		"RATE_LIMIT_WHITELIST":     "127.0.0.1, ::1",
	}
	cfg := LoadConfig(func(k string) string { return env[k] })

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 50, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.True(t, cfg.Whitelist["::1"])
	assert.NotEmpty(t, cfg.EndpointConfigs)

	disabled := LoadConfig(func(k string) string {
		if k == "RATE_LIMIT_ENABLED" {
			return "false"
		}
		return ""
	})
	assert.False(t, disabled.Enabled)
}
