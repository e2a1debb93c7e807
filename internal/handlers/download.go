package handlers

//go:generate mockgen -source=download.go -destination=mock_download.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/survey-collector/internal/logger"
	"github.com/sbilibin2017/survey-collector/internal/models"
	"github.com/sbilibin2017/survey-collector/internal/services"
)

// ArchiveBuilder defines the interface that the service must implement.
type ArchiveBuilder interface {
	Load(ctx context.Context, sectionID int64) (*models.SectionArchive, error)
	Write(w io.Writer, arc *models.SectionArchive) error
}

// NewDownloadHandler returns an HTTP handler that streams a section archive.
// @Summary Download section archive
// @Description Streams a ZIP with the answers JSON, the photos still on disk and a LEIA-ME.txt summary.
// @Tags dashboard
// @Produce application/zip
// @Param secao query int true "Section ID"
// @Success 200 {file} file "ZIP archive"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid section"
// @Failure 404 {object} models.ErrorResponse "Unknown section"
// @Failure 500 {object} models.ErrorResponse "Storage error"
// @Router /download-secao [get]
func NewDownloadHandler(svc ArchiveBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("secao")
		if raw == "" {
			writeError(w, http.StatusBadRequest, "Parâmetro 'secao' ausente")
			return
		}

		sectionID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Parâmetro 'secao' inválido")
			return
		}

		arc, err := svc.Load(r.Context(), sectionID)
		if err != nil {
			if errors.Is(err, services.ErrSectionNotFound) {
				writeError(w, http.StatusNotFound, "Erro ao buscar usuário/seção")
				return
			}
			logger.Log.Errorw("failed to load archive", "sectionID", sectionID, "error", err)
			writeError(w, http.StatusInternalServerError, "Erro ao buscar usuário/seção")
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ArchiveFileName(sectionID)))
		w.WriteHeader(http.StatusOK)

		// headers are gone, failures can only be logged
		if err := svc.Write(w, arc); err != nil {
			logger.Log.Errorw("failed to stream archive", "sectionID", sectionID, "error", err)
		}
	}
}
