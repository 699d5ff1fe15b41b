package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/RahulMisra2000/angular-security-course/app"
	"github.com/RahulMisra2000/angular-security-course/utils"
	"go.uber.org/zap"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles GET /healthz.
// Basic health check - always returns 200 if the service is running.
func HealthCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// ReadinessCheck handles GET /readyz.
// Validates that the user store is reachable. In memory mode there is nothing
// external to check and the service is always ready.
func ReadinessCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		checks := make(map[string]string)
		status := "healthy"
		httpStatus := http.StatusOK

		if deps.DB != nil {
			if err := deps.DB.HealthCheck(ctx); err != nil {
				deps.Logger.Warn("database health check failed", zap.Error(err))
				checks["database"] = "unhealthy"
				status = "unhealthy"
				httpStatus = http.StatusServiceUnavailable
			} else {
				checks["database"] = "healthy"
			}
		} else {
			checks["database"] = "memory"
		}

		_ = utils.WriteJSON(w, httpStatus, HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    checks,
		})
	}
}
