package middleware

import (
	"net/http"

	"github.com/RahulMisra2000/angular-security-course/tokens"
	"go.uber.org/zap"
)

// Cookie and header names forming the wire protocol. SESSIONID is HttpOnly
// and carries the signed session credential; XSRF-TOKEN must stay readable by
// page script so it can be mirrored into the request header.
const (
	SessionCookieName = "SESSIONID"
	CSRFCookieName    = "XSRF-TOKEN"
	CSRFHeaderName    = "x-xsrf-token"
)

// SessionVerifier validates a session credential and returns the identity it
// carries.
type SessionVerifier interface {
	Verify(token string) (tokens.Identity, error)
}

// Sessions extracts the caller identity from the session cookie. It runs
// first in the pipeline on every request and never rejects: a missing or
// invalid credential only means downstream gates see the caller as anonymous.
type Sessions struct {
	verifier SessionVerifier
	logger   *zap.Logger
}

// NewSessions creates the session extraction middleware
func NewSessions(verifier SessionVerifier, logger *zap.Logger) *Sessions {
	return &Sessions{
		verifier: verifier,
		logger:   logger,
	}
}

// Extract reads the session cookie, verifies it, and attaches the identity to
// the request context. Verification failures are logged and swallowed; the
// authentication gate is the sole rejection point.
func (s *Sessions) Extract(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := s.verifier.Verify(cookie.Value)
		if err != nil {
			// Token contents are never logged.
			s.logger.Warn("session token rejected, continuing as anonymous",
				zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
