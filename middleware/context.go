package middleware

import (
	"context"

	"github.com/RahulMisra2000/angular-security-course/tokens"
)

// Context key type to avoid collisions
type contextKey string

// identityKey is the context key for the verified caller identity
const identityKey contextKey = "identity"

// WithIdentity attaches a verified identity to the context. Only the session
// extraction middleware writes this; everything downstream is read-only.
func WithIdentity(ctx context.Context, identity tokens.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext retrieves the verified identity from context. The second
// return value is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (tokens.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(tokens.Identity)
	return identity, ok
}
