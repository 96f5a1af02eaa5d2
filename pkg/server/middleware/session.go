package middleware

import (
	"net"
	"net/http"
	"strings"

	"userd/pkg/identity"
	"userd/pkg/token"
)

const bearerPrefix = "Bearer "

// SessionAuthenticator is middleware that validates bearer session tokens
type SessionAuthenticator struct {
	Issuer *token.Issuer
}

// NewSessionAuthenticator creates a new session authenticator middleware
func NewSessionAuthenticator(issuer *token.Issuer) *SessionAuthenticator {
	return &SessionAuthenticator{Issuer: issuer}
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// stores the authenticated identity in the request context
func (s *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		userID, err := s.Issuer.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid or expired token"))
			return
		}

		id := &identity.Identity{UserID: userID}
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			id.WithRemoteIP(net.ParseIP(host))
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}
