package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/campaign-service/internal/logger"
	"github.com/sbilibin2017/campaign-service/internal/models"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting database reachability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.MessageResponse "ok"
// @Failure 503 {object} models.ErrorResponse "Database unavailable"
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "ok"})
	}
}
