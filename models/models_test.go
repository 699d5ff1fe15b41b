package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("defaults to student role", func(t *testing.T) {
		user := NewUser("a@b.com", "digest")

		assert.NotEqual(t, "", user.ID.String())
		assert.Equal(t, "a@b.com", user.Email)
		assert.Equal(t, []string{RoleStudent}, user.Roles)
		assert.False(t, user.IsAdmin())
	})

	t.Run("explicit roles are kept", func(t *testing.T) {
		user := NewUser("admin@b.com", "digest", RoleAdmin, RoleStudent)

		assert.True(t, user.IsAdmin())
		assert.True(t, user.HasRole(RoleStudent))
		assert.False(t, user.HasRole("AUDITOR"))
	})
}

func TestUserSerializationOmitsDigest(t *testing.T) {
	user := NewUser("a@b.com", "super-secret-digest")

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-digest")
	assert.NotContains(t, string(raw), "password")
}

func TestUserProfile(t *testing.T) {
	user := NewUser("a@b.com", "digest")
	profile := user.Profile()

	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, user.Email, profile.Email)
	assert.Equal(t, user.Roles, profile.Roles)
}
