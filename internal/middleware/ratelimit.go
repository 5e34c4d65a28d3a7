package middleware

import (
	"net/http"

	"github.com/go-edu/utxo-merkle-index/internal/config"
	"golang.org/x/time/rate"
)

// RateLimit limits the number of requests per second
func RateLimit(cfg config.RateLimitConfig) Middleware {
	limiter := rate.NewLimiter(
		rate.Limit(cfg.RequestsPerSecond),
		cfg.Burst,
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
