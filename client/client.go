// Package client is the Go consumer of the lessons API: an HTTP client that
// carries the session cookies, mirrors the CSRF cookie into the request
// header, and a reactive auth-state store on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/RahulMisra2000/angular-security-course/middleware"
	"github.com/RahulMisra2000/angular-security-course/models"
)

// ErrForbidden is returned for any 403: missing identity, bad credentials,
// or CSRF mismatch. The server deliberately does not say which.
var ErrForbidden = errors.New("forbidden")

// User is the identity summary returned by the auth endpoints. The zero
// value is the anonymous placeholder.
type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// Anonymous is the well-defined "no user" value. The store holds it whenever
// no real identity is known, so readers never observe an undefined state.
var Anonymous = User{}

// IsAnonymous reports whether the user is the anonymous placeholder.
func (u User) IsAnonymous() bool {
	return u.ID == ""
}

// ValidationError carries the rule violations from a 400 response.
type ValidationError struct {
	Errors []string `json:"errors"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Errors)
}

// APIClient talks to the lessons API. Cookies (session and CSRF) live in its
// jar, so a single client instance represents one browser-like session.
type APIClient struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewAPIClient creates an API client for the given base URL.
func NewAPIClient(baseURL string) (*APIClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &APIClient{
		baseURL:    parsed,
		httpClient: &http.Client{Jar: jar},
	}, nil
}

// SignUp registers a new account and starts a session.
func (c *APIClient) SignUp(ctx context.Context, email, password string) (User, error) {
	return c.postCredentials(ctx, "/api/signup", email, password)
}

// Login starts a session for existing credentials.
func (c *APIClient) Login(ctx context.Context, email, password string) (User, error) {
	return c.postCredentials(ctx, "/api/login", email, password)
}

// Logout ends the session. The XSRF-TOKEN cookie is mirrored into the
// x-xsrf-token header, which only same-origin code holding the jar can do.
func (c *APIClient) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/logout", nil)
	if err != nil {
		return err
	}
	if token := c.csrfToken(); token != "" {
		req.Header.Set(middleware.CSRFHeaderName, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	defer func() { _, _ = io.Copy(io.Discard, resp.Body); _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusForbidden {
		return ErrForbidden
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("logout failed: status %d", resp.StatusCode)
	}
	return nil
}

// CurrentUser fetches the identity bound to the session cookie. Anonymous
// callers receive an empty body, returned here as the Anonymous placeholder.
func (c *APIClient) CurrentUser(ctx context.Context) (User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/user", nil)
	if err != nil {
		return Anonymous, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Anonymous, fmt.Errorf("current user request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Anonymous, fmt.Errorf("current user failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Anonymous, fmt.Errorf("read current user response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return Anonymous, nil
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return Anonymous, fmt.Errorf("decode current user response: %w", err)
	}
	return user, nil
}

// Lessons fetches the protected lesson list.
func (c *APIClient) Lessons(ctx context.Context) ([]models.Lesson, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/lessons", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lessons request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusForbidden {
		return nil, ErrForbidden
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lessons failed: status %d", resp.StatusCode)
	}

	var payload struct {
		Lessons []models.Lesson `json:"lessons"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode lessons response: %w", err)
	}
	return payload.Lessons, nil
}

func (c *APIClient) postCredentials(ctx context.Context, path, email, password string) (User, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Anonymous, fmt.Errorf("encode credentials: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return Anonymous, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Anonymous, fmt.Errorf("%s request: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		var user User
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			return Anonymous, fmt.Errorf("decode %s response: %w", path, err)
		}
		return user, nil
	case http.StatusBadRequest:
		var validationErr ValidationError
		if err := json.NewDecoder(resp.Body).Decode(&validationErr); err != nil || len(validationErr.Errors) == 0 {
			return Anonymous, fmt.Errorf("%s failed: status %d", path, resp.StatusCode)
		}
		return Anonymous, &validationErr
	case http.StatusForbidden:
		return Anonymous, ErrForbidden
	default:
		return Anonymous, fmt.Errorf("%s failed: status %d", path, resp.StatusCode)
	}
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", path, err)
	}
	return req, nil
}

// csrfToken reads the XSRF-TOKEN cookie from the jar, the way page script
// reads it from document.cookie.
func (c *APIClient) csrfToken() string {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == middleware.CSRFCookieName {
			return cookie.Value
		}
	}
	return ""
}
