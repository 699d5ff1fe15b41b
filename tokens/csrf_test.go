package tokens

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCSRFToken(t *testing.T) {
	token, err := GenerateCSRFToken()
	require.NoError(t, err)

	raw, err := hex.DecodeString(token)
	require.NoError(t, err, "token must be hex encoded")
	assert.Len(t, raw, csrfTokenBytes, "token must carry 256 bits of entropy")
}

func TestGenerateCSRFTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateCSRFToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "tokens must not repeat")
		seen[token] = true
	}
}
