package client

import (
	"context"
	"sync"
)

// AuthState is a reactive container for the current user. It always holds a
// definite value, Anonymous until proven otherwise, and only ever changes in
// response to a server round trip: login, signup, logout, or the initial
// identity fetch. Consumers never construct identities locally.
type AuthState struct {
	api *APIClient

	mu      sync.RWMutex
	current User
	subs    []*subscription

	ready     chan struct{}
	readyOnce sync.Once
}

type subscription struct {
	users    chan User
	loggedIn chan bool
}

// NewAuthState creates the store and kicks off the initial identity read
// against GET /api/user. Until that settles the store reports Anonymous;
// Ready signals when the first definitive answer is in.
func NewAuthState(ctx context.Context, api *APIClient) *AuthState {
	s := &AuthState{
		api:     api,
		current: Anonymous,
		ready:   make(chan struct{}),
	}
	go s.initialize(ctx)
	return s
}

func (s *AuthState) initialize(ctx context.Context) {
	defer s.readyOnce.Do(func() { close(s.ready) })

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		// Network or server trouble resolves to anonymous rather than
		// leaving consumers waiting on an answer that never comes.
		s.set(Anonymous)
		return
	}
	s.set(user)
}

// Ready is closed once the initial identity fetch has settled, successfully
// or not. After it closes CurrentUser reflects the server's answer.
func (s *AuthState) Ready() <-chan struct{} {
	return s.ready
}

// CurrentUser returns the user the store currently holds.
func (s *AuthState) CurrentUser() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsLoggedIn reports whether a real identity is held.
func (s *AuthState) IsLoggedIn() bool {
	return !s.CurrentUser().IsAnonymous()
}

// IsLoggedOut is the negation of IsLoggedIn.
func (s *AuthState) IsLoggedOut() bool {
	return !s.IsLoggedIn()
}

// Users returns a channel of real identities. Anonymous values are
// suppressed, so consumers that only care about "someone logged in" never
// see the placeholder. If a user is already held it is delivered first.
func (s *AuthState) Users() <-chan User {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscription{users: make(chan User, 1)}
	s.subs = append(s.subs, sub)
	if !s.current.IsAnonymous() {
		sub.users <- s.current
	}
	return sub.users
}

// LoggedIn returns a channel that carries the authentication flag on every
// state change, starting with the current value. Each channel conflates:
// a slow consumer sees the latest flag, not every intermediate one.
func (s *AuthState) LoggedIn() <-chan bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscription{loggedIn: make(chan bool, 1)}
	s.subs = append(s.subs, sub)
	sub.loggedIn <- !s.current.IsAnonymous()
	return sub.loggedIn
}

// SignUp registers an account and, on success, holds the new identity.
func (s *AuthState) SignUp(ctx context.Context, email, password string) (User, error) {
	user, err := s.api.SignUp(ctx, email, password)
	if err != nil {
		return Anonymous, err
	}
	s.set(user)
	return user, nil
}

// Login authenticates and, on success, holds the identity from the response.
// Failures leave the held state untouched.
func (s *AuthState) Login(ctx context.Context, email, password string) (User, error) {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return Anonymous, err
	}
	s.set(user)
	return user, nil
}

// Logout ends the session and drops back to Anonymous on success.
func (s *AuthState) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		return err
	}
	s.set(Anonymous)
	return nil
}

// Refresh re-reads the identity from the server.
func (s *AuthState) Refresh(ctx context.Context) error {
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		return err
	}
	s.set(user)
	return nil
}

func (s *AuthState) set(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user
	for _, sub := range s.subs {
		if sub.users != nil && !user.IsAnonymous() {
			conflate(sub.users, user)
		}
		if sub.loggedIn != nil {
			conflate(sub.loggedIn, !user.IsAnonymous())
		}
	}
}

// conflate delivers v on a buffered channel, replacing an undelivered value.
func conflate[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
