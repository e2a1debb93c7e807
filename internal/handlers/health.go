package handlers

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/survey-collector/internal/logger"
)

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns a liveness handler backed by a database ping.
// @Summary Health check
// @Tags system
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "database unavailable"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
