// Package session identifies browsing sessions. A session is an anonymous
// uuid cookie, not a credential: it only names the cart slot the visitor's
// request list lives in.
package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const sessionKey = contextKey("cart_session")

// CookieName is the session cookie issued to every cart caller.
const CookieName = "cart_session"

// Middleware reads the session cookie, issuing a fresh uuid when the request
// carries none, and puts the session id on the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(CookieName); err == nil {
			id = cookie.Value
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromRequest returns the session id set by Middleware, or "" outside it.
func FromRequest(r *http.Request) string {
	if id, ok := r.Context().Value(sessionKey).(string); ok {
		return id
	}
	return ""
}
