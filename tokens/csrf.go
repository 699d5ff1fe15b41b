package tokens

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// csrfTokenBytes is the entropy of a CSRF token. 32 bytes = 256 bits.
const csrfTokenBytes = 32

// GenerateCSRFToken produces a cryptographically random opaque token, hex
// encoded. The token has no relationship to any session credential; the CSRF
// gate verifies it by pure cookie/header equality (double-submit pattern).
func GenerateCSRFToken() (string, error) {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate csrf token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
