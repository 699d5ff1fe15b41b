package middleware

import (
	"crypto/subtle"
	"net/http"
)

// RequireCSRF enforces the double-submit cookie pattern on state-changing
// routes: the XSRF-TOKEN cookie and the x-xsrf-token header must both be
// present and equal. A cross-site request carries the cookie automatically
// but cannot read it to replicate into the header. Mismatch, missing header,
// and missing cookie all fail identically with an empty 403.
func RequireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CSRFCookieName)
		header := r.Header.Get(CSRFHeaderName)

		if err != nil || cookie.Value == "" || header == "" ||
			subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(header)) != 1 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
