package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/degenfarm/internal/logger"
)

// ReadinessTimeout bounds each dependency check in /readyz
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NamedPinger pairs a dependency with the name reported when it fails.
type NamedPinger struct {
	Name   string
	Pinger Pinger
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready once every dependency answers a ping. Nil
// pingers are skipped, so an in-memory deployment is always ready.
func HandleReadyz(deps ...NamedPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, dep := range deps {
			if dep.Pinger == nil {
				continue
			}

			ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
			err := dep.Pinger.Ping(ctx)
			cancel()

			if err != nil {
				logger.FromContext(r.Context()).Error(LogMsgReadinessCheck, "dependency", dep.Name, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: dep.Name + " unreachable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
