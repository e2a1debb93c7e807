package handlers

//go:generate mockgen -source=purge.go -destination=mock_purge.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/survey-collector/internal/logger"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// Purger defines the interface that the service must implement.
type Purger interface {
	Purge(ctx context.Context) error
}

// NewPurgeHandler returns an HTTP handler that wipes all tables and photos.
// @Summary Clear all data
// @Description Deletes every user, section, answer and photo row, then every file in the photo directory.
// @Tags admin
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 500 {object} models.ErrorResponse "Storage error"
// @Router /admin/limpar-tabelas [post]
func NewPurgeHandler(svc Purger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Purge(r.Context()); err != nil {
			logger.Log.Errorw("failed to purge data", "error", err)
			writeError(w, http.StatusInternalServerError, "Erro ao limpar tabelas")
			return
		}

		writeJSON(w, http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Tabelas e fotos limpas com sucesso!",
		})
	}
}
