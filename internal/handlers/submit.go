package handlers

//go:generate mockgen -source=submit.go -destination=mock_submit.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/survey-collector/internal/logger"
	"github.com/sbilibin2017/survey-collector/internal/models"
	"github.com/sbilibin2017/survey-collector/internal/services"
)

// Submitter defines the interface that the service must implement.
type Submitter interface {
	Submit(ctx context.Context, sub models.Submission) error
}

// NewSubmitHandler returns an HTTP handler that stores a submission from the mobile client.
// @Summary Submit survey data
// @Description Stores the user, the section, its answers and its photos atomically. Photos without base64 payload are skipped.
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body models.SubmissionRequest true "Submission"
// @Success 200 {object} models.SuccessResponse "Dados salvos com sucesso!"
// @Failure 400 {object} models.ErrorResponse "Missing identifiers, invalid JSON or invalid photo"
// @Failure 413 {object} models.ErrorResponse "Body larger than the configured limit"
// @Failure 500 {object} models.ErrorResponse "Storage error"
// @Router /api/enviar-dados [post]
func NewSubmitHandler(svc Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				logger.Log.Warnw("submission body too large", "limit", tooLarge.Limit)
				writeError(w, http.StatusRequestEntityTooLarge, "Corpo da requisição muito grande")
				return
			}
			logger.Log.Warnw("failed to decode submission", "error", err)
			writeError(w, http.StatusBadRequest, "JSON inválido")
			return
		}

		if req.UserID == nil || req.SectionID == nil || *req.UserID == 0 || *req.SectionID == 0 {
			writeError(w, http.StatusBadRequest, "id_usuario ou id_secao ausente")
			return
		}

		err := svc.Submit(r.Context(), models.Submission{
			UserID:    *req.UserID,
			SectionID: *req.SectionID,
			Name:      req.Name,
			Email:     req.Email,
			Answers:   req.Answers,
			Photos:    req.Photos,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingIdentifiers):
				writeError(w, http.StatusBadRequest, "id_usuario ou id_secao ausente")
			case errors.Is(err, services.ErrInvalidPhoto):
				writeError(w, http.StatusBadRequest, "Foto inválida")
			case errors.Is(err, services.ErrSectionExists):
				writeError(w, http.StatusInternalServerError, "Erro ao salvar seção")
			default:
				logger.Log.Errorw("failed to store submission", "userID", *req.UserID, "sectionID", *req.SectionID, "error", err)
				writeError(w, http.StatusInternalServerError, "Erro ao salvar dados")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Dados salvos com sucesso!",
		})
	}
}
