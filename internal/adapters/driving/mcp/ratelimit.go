package mcp

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/ziwei/internal/logger"
)

// RateLimitConfig bounds how fast HTTP clients may call the server.
// The limit is shared by every client.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate. Zero or less disables limiting.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is applied to the HTTP transport unless overridden.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 20, BurstSize: 40}

// Enabled reports whether the config limits anything.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// limitRequests rejects requests over the limit with 429 Too Many Requests.
func limitRequests(next http.Handler, cfg RateLimitConfig) http.Handler {
	if !cfg.Enabled() {
		return next
	}

	burst := cfg.BurstSize
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Debug("rate limit exceeded for %s", r.RemoteAddr)
			w.Header().Set("Retry-After", "1")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
