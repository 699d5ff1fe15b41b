package handlers

import (
	"net/http"

	"github.com/RahulMisra2000/angular-security-course/app"
	"github.com/RahulMisra2000/angular-security-course/middleware"
	"github.com/RahulMisra2000/angular-security-course/utils"
	"go.uber.org/zap"
)

// CurrentUserHandler returns the identity of the caller, looked up fresh from
// the user store (roles and email are never trusted from the token). Anonymous
// callers get an empty 200, which the client store maps to its anonymous
// placeholder; this route is intentionally not behind the authentication gate.
func CurrentUserHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			_ = utils.WriteJSON(w, http.StatusOK, nil)
			return
		}

		user, err := deps.UserService.GetByID(r.Context(), identity.Subject)
		if err != nil {
			// A valid token for a vanished user is still anonymous, not an error.
			deps.Logger.Warn("session subject not found",
				zap.String("subject", identity.Subject.String()),
				zap.Error(err))
			_ = utils.WriteJSON(w, http.StatusOK, nil)
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, user.Profile())
	}
}
