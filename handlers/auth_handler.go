package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RahulMisra2000/angular-security-course/app"
	"github.com/RahulMisra2000/angular-security-course/middleware"
	"github.com/RahulMisra2000/angular-security-course/models"
	"github.com/RahulMisra2000/angular-security-course/repositories"
	"github.com/RahulMisra2000/angular-security-course/services"
	"github.com/RahulMisra2000/angular-security-course/tokens"
	"github.com/RahulMisra2000/angular-security-course/utils"
	"go.uber.org/zap"
)

// CredentialsRequest is the JSON body for signup and login
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupHandler creates a new user and starts a session for it.
func SignupHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = utils.WriteBadRequest(w, "Invalid request body")
			return
		}

		violations := utils.ValidateStruct(req)
		violations = append(violations, utils.ValidatePassword(req.Password)...)
		if len(violations) > 0 {
			_ = utils.WriteValidationErrors(w, violations)
			return
		}

		user, err := deps.UserService.SignUp(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, repositories.ErrEmailTaken) {
				_ = utils.WriteConflict(w, "Email already registered")
				return
			}
			deps.Logger.Error("signup failed", zap.Error(err))
			_ = utils.WriteInternalServerError(w)
			return
		}

		issueSession(w, deps, user)
	}
}

// LoginHandler verifies credentials and starts a session.
func LoginHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = utils.WriteBadRequest(w, "Invalid request body")
			return
		}

		if violations := utils.ValidateStruct(req); len(violations) > 0 {
			_ = utils.WriteValidationErrors(w, violations)
			return
		}

		user, err := deps.UserService.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				// Bodiless, like the gates: no hint which part was wrong.
				w.WriteHeader(http.StatusForbidden)
				return
			}
			deps.Logger.Error("login failed", zap.Error(err))
			_ = utils.WriteInternalServerError(w)
			return
		}

		issueSession(w, deps, user)
	}
}

// LogoutHandler clears both session cookies. It succeeds regardless of prior
// state; a second logout is a no-op with the same result.
func LogoutHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookies(w, deps.Config.Session.CookieSecure)
		w.WriteHeader(http.StatusOK)
	}
}

// issueSession mints a session credential and a fresh unrelated CSRF token,
// sets both cookies, and returns the identity summary. The two tokens share
// nothing: the CSRF defense stays pure double-submit.
func issueSession(w http.ResponseWriter, deps *app.Dependencies, user *models.User) {
	ttl := deps.Config.Session.TTL
	sessionToken, err := deps.Codec.Issue(user.ID, ttl)
	if err != nil {
		deps.Logger.Error("failed to issue session token", zap.Error(err))
		_ = utils.WriteInternalServerError(w)
		return
	}

	csrfToken, err := tokens.GenerateCSRFToken()
	if err != nil {
		deps.Logger.Error("failed to generate csrf token", zap.Error(err))
		_ = utils.WriteInternalServerError(w)
		return
	}

	secure := deps.Config.Session.CookieSecure

	// Session cookie: never exposed to page script, encrypted transport only.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})

	// CSRF cookie: page script must be able to read it to mirror it into the
	// x-xsrf-token header, so HttpOnly stays off.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CSRFCookieName,
		Value:    csrfToken,
		Path:     "/",
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})

	_ = utils.WriteJSON(w, http.StatusOK, user.Profile())
}

// clearSessionCookies expires both auth cookies.
func clearSessionCookies(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CSRFCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
