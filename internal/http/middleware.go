package http

import (
	"net"
	"net/http"

	rl "github.com/binaamart/storefront/internal/http/rate_limiter"
)

// RateLimit throttles per remote IP. Applied to the contact form, the one
// endpoint worth spamming.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
