package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitReady(t *testing.T, s *AuthState) {
	t.Helper()
	select {
	case <-s.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("store never settled")
	}
}

func TestStoreStartsAnonymousAndSettlesOnce(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)

	store := NewAuthState(context.Background(), api)
	waitReady(t, store)

	// No session cookie exists, so the initial fetch resolves the
	// authentication question to a definite no, exactly once.
	assert.True(t, store.IsLoggedOut())
	assert.False(t, store.IsLoggedIn())
	assert.Equal(t, Anonymous, store.CurrentUser())

	select {
	case <-store.Ready():
		// Already closed; a second wait returns immediately.
	default:
		t.Fatal("ready must stay settled")
	}
}

func TestStoreRecoversSessionOnStartup(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)
	ctx := context.Background()

	// A prior signup leaves the session cookie in the jar; a new store on
	// the same client finds the identity without any local state.
	user, err := api.SignUp(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)

	store := NewAuthState(ctx, api)
	waitReady(t, store)

	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, user.ID, store.CurrentUser().ID)
}

func TestStoreResolvesAnonymousWhenServerUnreachable(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)
	server.Close()

	store := NewAuthState(context.Background(), api)
	waitReady(t, store)

	// Consumers are never left waiting on an answer that cannot come.
	assert.True(t, store.IsLoggedOut())
}

func TestStoreLoginAndLogoutMutations(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)
	ctx := context.Background()

	store := NewAuthState(ctx, api)
	waitReady(t, store)

	user, err := store.SignUp(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)
	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, user, store.CurrentUser())

	require.NoError(t, store.Logout(ctx))
	assert.True(t, store.IsLoggedOut())
	assert.Equal(t, Anonymous, store.CurrentUser())

	loggedIn, err := store.Login(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.True(t, store.IsLoggedIn())
}

func TestStoreFailedLoginLeavesStateUntouched(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)
	ctx := context.Background()

	store := NewAuthState(ctx, api)
	waitReady(t, store)

	_, err := store.SignUp(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)
	before := store.CurrentUser()

	_, err = store.Login(ctx, "a@b.com", "Wrong1Pass!")
	require.ErrorIs(t, err, ErrForbidden)

	// The held identity survives a rejected attempt.
	assert.Equal(t, before, store.CurrentUser())
	assert.True(t, store.IsLoggedIn())
}

func TestUsersChannelSuppressesAnonymous(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)
	ctx := context.Background()

	store := NewAuthState(ctx, api)
	waitReady(t, store)

	users := store.Users()
	select {
	case u := <-users:
		t.Fatalf("anonymous state must not be delivered, got %+v", u)
	case <-time.After(50 * time.Millisecond):
	}

	user, err := store.SignUp(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)

	select {
	case got := <-users:
		assert.Equal(t, user.ID, got.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("login was never delivered")
	}

	// Logging out does not push the placeholder through the user stream.
	require.NoError(t, store.Logout(ctx))
	select {
	case u := <-users:
		t.Fatalf("logout must not be delivered on the user stream, got %+v", u)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLoggedInChannelTracksTransitions(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)
	ctx := context.Background()

	store := NewAuthState(ctx, api)
	waitReady(t, store)

	flags := store.LoggedIn()
	assert.False(t, <-flags, "initial flag reflects the anonymous state")

	_, err := store.SignUp(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)
	assert.True(t, <-flags)

	require.NoError(t, store.Logout(ctx))
	assert.False(t, <-flags)
}

func TestUsersChannelDeliversCurrentUserToLateSubscriber(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)
	ctx := context.Background()

	store := NewAuthState(ctx, api)
	waitReady(t, store)

	user, err := store.SignUp(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)

	// Subscribing after login still yields the held identity.
	select {
	case got := <-store.Users():
		assert.Equal(t, user.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("held identity was not replayed")
	}
}

func TestStoreRefresh(t *testing.T) {
	server := startServer(t)
	api := newClient(t, server)
	ctx := context.Background()

	store := NewAuthState(ctx, api)
	waitReady(t, store)

	_, err := api.SignUp(ctx, "a@b.com", "Valid1Pass!")
	require.NoError(t, err)

	// The store has not seen the signup; a refresh re-reads the server.
	require.NoError(t, store.Refresh(ctx))
	assert.True(t, store.IsLoggedIn())
	assert.Equal(t, "a@b.com", store.CurrentUser().Email)
}

func TestStoreReadyAfterSlowServer(t *testing.T) {
	release := make(chan struct{})
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer stub.Close()

	api, err := NewAPIClient(stub.URL)
	require.NoError(t, err)

	store := NewAuthState(context.Background(), api)

	select {
	case <-store.Ready():
		t.Fatal("store settled before the server answered")
	case <-time.After(50 * time.Millisecond):
	}
	assert.True(t, store.IsLoggedOut(), "unsettled store still reads as anonymous")

	close(release)
	waitReady(t, store)
	assert.True(t, store.IsLoggedOut())
}
