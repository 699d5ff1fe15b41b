package middleware

import "net/http"

// RequireAuth terminates any request that carries no verified identity.
// The 403 deliberately has no body: the caller cannot tell a missing session
// from an expired or tampered one.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
