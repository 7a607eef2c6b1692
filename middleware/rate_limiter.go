// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type endpointLimit struct {
	limit rate.Limit
	burst int
}

type RateLimiter struct {
	ips            map[string]*limiterEntry
	mu             *sync.Mutex
	defaultLimit   rate.Limit
	defaultBurst   int
	idleTTL        time.Duration
	skipPrefixes   []string
	endpointLimits map[string]endpointLimit
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	limiter := &RateLimiter{
		ips:            make(map[string]*limiterEntry),
		mu:             &sync.Mutex{},
		defaultLimit:   rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst:   20,
		idleTTL:        10 * time.Minute,
		skipPrefixes:   []string{"/static/", "/health"},
		endpointLimits: make(map[string]endpointLimit),
	}

	// Uploads write to object storage; keep them slower
	limiter.endpointLimits["/upload"] = endpointLimit{
		limit: rate.Every(time.Second),
		burst: 5,
	}

	return limiter
}

// SetDefaultLimit changes the per-client limit for limiters created afterwards.
func (r *RateLimiter) SetDefaultLimit(limit rate.Limit, burst int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultLimit, r.defaultBurst = limit, burst
}

// Cleanup drops limiters for clients idle longer than the TTL.
func (r *RateLimiter) Cleanup(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, entry := range r.ips {
		if now.Sub(entry.lastSeen) > r.idleTTL {
			delete(r.ips, key)
		}
	}
}

// StartCleanup runs Cleanup periodically until stop is closed.
func (r *RateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				r.Cleanup(now)
			case <-stop:
				return
			}
		}
	}()
}

func (r *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range r.skipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			limit, burst := r.defaultLimit, r.defaultBurst
			key := c.RealIP()
			if el, exists := r.endpointLimits[path]; exists {
				limit, burst = el.limit, el.burst
				key = key + "|" + path
			}

			if !r.getLimiter(key, limit, burst).Allow() {
				c.Response().Header().Set("Retry-After", "1")
				return c.String(http.StatusTooManyRequests, "Demasiadas solicitudes. Intente más tarde.")
			}

			return next(c)
		}
	}
}

func (r *RateLimiter) getLimiter(key string, limit rate.Limit, burst int) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.ips[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(limit, burst)}
		r.ips[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}
