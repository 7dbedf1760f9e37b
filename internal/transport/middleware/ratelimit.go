package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter hands out per-client token buckets. Each Limit call gets its
// own set of buckets, so routes with different budgets never share one.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*scope
	now    func() time.Time
	stop   chan struct{}
	once   sync.Once
}

type scope struct {
	capacity float64
	perSec   float64
	buckets  sync.Map // client key -> *bucket
}

type bucket struct {
	mu     sync.Mutex
	tokens float64
	seen   time.Time
}

// NewRateLimiter starts a limiter that drops idle buckets every
// cleanupInterval. Stop must be called on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now, stop: make(chan struct{})}
	go rl.sweepEvery(cleanupInterval)
	return rl
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client host, refilled continuously.
// Rejections get a 429 with a Retry-After that matches the bucket deficit.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	if perMinute < 1 {
		perMinute = 1
	}
	s := &scope{capacity: float64(perMinute), perSec: float64(perMinute) / 60}

	rl.mu.Lock()
	rl.scopes = append(rl.scopes, s)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := s.take(clientIP(r), rl.now())
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many requests, slow down"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port so every connection from one host shares a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// take spends one token. When none is left it reports how long until one is.
func (s *scope) take(key string, now time.Time) (time.Duration, bool) {
	v, _ := s.buckets.LoadOrStore(key, &bucket{tokens: s.capacity, seen: now})
	b := v.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.seen).Seconds(); elapsed > 0 {
		b.tokens = math.Min(s.capacity, b.tokens+elapsed*s.perSec)
	}
	b.seen = now

	if b.tokens < 1 {
		deficit := (1 - b.tokens) / s.perSec
		return time.Duration(deficit * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) sweepEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

// sweep drops buckets untouched for bucketIdleTTL. A dropped bucket comes
// back full, which is what it would have refilled to anyway.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	scopes := append([]*scope(nil), rl.scopes...)
	rl.mu.Unlock()

	for _, s := range scopes {
		s.buckets.Range(func(key, value any) bool {
			b := value.(*bucket)
			b.mu.Lock()
			idle := now.Sub(b.seen)
			b.mu.Unlock()
			if idle > bucketIdleTTL {
				s.buckets.Delete(key)
			}
			return true
		})
	}
}
