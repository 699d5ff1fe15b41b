package handlers

import (
	"net/http"

	"github.com/RahulMisra2000/angular-security-course/app"
	"github.com/RahulMisra2000/angular-security-course/models"
	"github.com/RahulMisra2000/angular-security-course/utils"
	"go.uber.org/zap"
)

// LessonsResponse wraps the lesson list in an object rather than returning a
// bare array.
type LessonsResponse struct {
	Lessons []models.Lesson `json:"lessons"`
}

// LessonsHandler returns the protected lesson list. The route sits behind the
// authentication gate; by the time this runs the caller is known.
func LessonsHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lessons, err := deps.Lessons.List(r.Context())
		if err != nil {
			deps.Logger.Error("failed to list lessons", zap.Error(err))
			_ = utils.WriteInternalServerError(w)
			return
		}

		if lessons == nil {
			lessons = []models.Lesson{}
		}
		_ = utils.WriteJSON(w, http.StatusOK, LessonsResponse{Lessons: lessons})
	}
}
