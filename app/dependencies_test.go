package app

import (
	"context"
	"testing"
	"time"

	"github.com/RahulMisra2000/angular-security-course/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Environment: "development",
		Session: config.SessionConfig{
			TTL:          2 * time.Hour,
			CookieSecure: false,
		},
	}
}

func TestNewDependenciesMemoryMode(t *testing.T) {
	ctx := context.Background()

	deps, err := NewDependencies(ctx, memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = deps.Close(ctx) }()

	assert.Nil(t, deps.DB, "memory mode must not open a database")
	assert.NotNil(t, deps.Users)
	assert.NotNil(t, deps.Lessons)
	assert.NotNil(t, deps.UserService)
	assert.NotNil(t, deps.Codec)
	assert.NotNil(t, deps.Sessions)

	lessons, err := deps.Lessons.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, lessons, "memory mode seeds lessons")
}

func TestDependenciesCodecRoundTrip(t *testing.T) {
	ctx := context.Background()

	deps, err := NewDependencies(ctx, memoryConfig(), zap.NewNop())
	require.NoError(t, err)
	defer func() { _ = deps.Close(ctx) }()

	user, err := deps.UserService.SignUp(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)

	token, err := deps.Codec.Issue(user.ID, time.Hour)
	require.NoError(t, err)

	identity, err := deps.Codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.Subject)
}
