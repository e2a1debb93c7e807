package handlers

//go:generate mockgen -source=listing.go -destination=mock_listing.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/survey-collector/internal/logger"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// Lister defines the interface that the service must implement.
type Lister interface {
	List(ctx context.Context) ([]models.ListingRow, error)
}

// NewListingHandler returns an HTTP handler for the dashboard listing.
// @Summary List submissions
// @Description One row per user and section, with answer and photo counts. Users without sections have null section fields.
// @Tags dashboard
// @Produce json
// @Success 200 {array} models.ListingRow
// @Failure 500 {object} models.ErrorResponse "Storage error"
// @Router /api/dados [get]
func NewListingHandler(svc Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list submissions", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}
