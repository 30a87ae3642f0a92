package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"naukriedge/internal/utils/helpers"
)

// RateLimiter is a fixed-window per-IP counter held in process memory.
// Counters reset every window and on restart; good enough for low-stakes
// abuse prevention on the free tools, nothing more.
type RateLimiter struct {
	limit  int
	window time.Duration

	mu          sync.Mutex
	windowStart time.Time
	counts      map[string]int
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		window:      window,
		windowStart: time.Now(),
		counts:      make(map[string]int),
	}
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.windowStart) >= rl.window {
		rl.windowStart = now
		rl.counts = make(map[string]int)
	}

	rl.counts[key]++
	return rl.counts[key] <= rl.limit
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r), time.Now()) {
			helpers.Error(w, http.StatusTooManyRequests, "too many requests, try again in a minute")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i > 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
