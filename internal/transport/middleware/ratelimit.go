package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter applies a token-bucket limit per client IP.
// Idle buckets are evicted by a background sweeper; call Stop on shutdown.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	done    chan struct{}
}

type tokenBucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	touched  time.Time
}

// NewRateLimiter starts a limiter whose sweeper runs every sweepEvery.
func NewRateLimiter(sweepEvery time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		done:    make(chan struct{}),
	}
	go rl.sweep(sweepEvery)
	return rl
}

// Stop shuts down the background sweeper.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// Limit rejects requests beyond maxPerMinute per remote address with 429.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.bucketFor(r.RemoteAddr, maxPerMinute).take() {
				retryAfter := int(60.0/float64(maxPerMinute)) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) bucketFor(addr string, maxPerMinute int) *tokenBucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[addr]
	if !ok {
		capacity := float64(maxPerMinute)
		b = &tokenBucket{
			tokens:   capacity,
			capacity: capacity,
			perSec:   capacity / 60.0,
			touched:  time.Now(),
		}
		rl.buckets[addr] = b
	}
	return b
}

func (b *tokenBucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.touched).Seconds() * b.perSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.touched = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for addr, b := range rl.buckets {
				b.mu.Lock()
				idle := now.Sub(b.touched)
				b.mu.Unlock()
				if idle > bucketIdleTTL {
					delete(rl.buckets, addr)
				}
			}
			rl.mu.Unlock()
		}
	}
}
