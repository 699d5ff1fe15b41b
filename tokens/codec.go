package tokens

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// wrong algorithm, malformed structure, missing subject, or expiry. Callers
// must not be able to distinguish the cause.
var ErrInvalidToken = errors.New("invalid session token")

// signingMethod is the only algorithm the codec issues or accepts. Tokens
// signed with anything else are rejected even when their signature checks out,
// closing the algorithm-confusion hole.
var signingMethod = jwt.SigningMethodRS256

// Identity is the verified payload of a session credential: who is calling.
// Roles and email are looked up fresh from the user store, never carried here.
type Identity struct {
	Subject uuid.UUID
}

// Claims are the registered JWT claims carried by a session credential.
// The user ID travels in the standard "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
}

// CodecConfig holds configuration for Codec
type CodecConfig struct {
	// PrivateKey signs issued credentials. May be nil for a verify-only codec
	// (any process holding the public key can validate without forging).
	PrivateKey *rsa.PrivateKey

	// PublicKey verifies credentials. Required.
	PublicKey *rsa.PublicKey

	// Now overrides the time source used for issuance and expiry checks.
	// Defaults to time.Now.
	Now func() time.Time
}

// Codec issues and verifies signed session credentials (RS256 JWTs).
// It is stateless and safe for concurrent use; the keys are loaded once at
// startup and never rotated at runtime.
type Codec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	now        func() time.Time
}

// NewCodec creates a new session token codec
func NewCodec(config CodecConfig) (*Codec, error) {
	if config.PublicKey == nil {
		return nil, errors.New("tokens: public key is required")
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &Codec{
		privateKey: config.PrivateKey,
		publicKey:  config.PublicKey,
		now:        now,
	}, nil
}

// Issue produces a signed session credential for the given subject, expiring
// ttl from now.
func (c *Codec) Issue(subject uuid.UUID, ttl time.Duration) (string, error) {
	if c.privateKey == nil {
		return "", errors.New("tokens: codec is verify-only, no private key")
	}
	if ttl <= 0 {
		return "", errors.New("tokens: ttl must be positive")
	}

	now := c.now()
	token := jwt.NewWithClaims(signingMethod, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(c.privateKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry of a credential and returns the
// identity it carries. Every failure path collapses to ErrInvalidToken;
// caller-supplied garbage never panics.
func (c *Codec) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != signingMethod.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.publicKey, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return Identity{Subject: subject}, nil
}
