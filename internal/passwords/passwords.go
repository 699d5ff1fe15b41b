// Package passwords hashes and verifies user passwords with argon2id.
// Digests are stored in the standard encoded form
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash) so parameters can evolve
// without invalidating existing records.
package passwords

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidDigest is returned when a stored digest cannot be parsed.
var ErrInvalidDigest = errors.New("passwords: invalid digest")

// argon2id parameters.
const (
	timeCost   = 1
	memoryCost = 64 * 1024
	threads    = 4
	saltLen    = 16
	keyLen     = 32
)

// Hash derives an argon2id digest for the given plaintext password.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, timeCost, memoryCost, threads, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memoryCost, timeCost, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plaintext matches the encoded digest. The comparison
// is constant time. A malformed digest returns ErrInvalidDigest rather than a
// mismatch so storage corruption is distinguishable from a wrong password.
func Verify(digest, plaintext string) (bool, error) {
	salt, key, params, err := decode(digest)
	if err != nil {
		return false, err
	}

	derived := argon2.IDKey([]byte(plaintext), salt, params.time, params.memory, params.threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, derived) == 1, nil
}

type params struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decode(digest string) (salt, key []byte, p params, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, p, ErrInvalidDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, p, ErrInvalidDigest
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, nil, p, ErrInvalidDigest
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return nil, nil, p, ErrInvalidDigest
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, p, ErrInvalidDigest
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, p, ErrInvalidDigest
	}
	return salt, key, p, nil
}
