package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/survey-collector/internal/models"
)

func TestListingHandler(t *testing.T) {
	completedAt := "2025-03-14 15:09:26"

	t.Run("rows with and without section", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLister := NewMockLister(ctrl)
		mockLister.EXPECT().List(gomock.Any()).Return([]models.ListingRow{
			{UserID: 7, Name: "Maria", Email: "maria@example.com", SectionID: int64Ptr(42), CompletedAt: &completedAt, TotalAnswers: 3, TotalPhotos: 1},
			{UserID: 8, Name: "João"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dados", nil)
		rr := httptest.NewRecorder()
		NewListingHandler(mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 2)

		assert.Equal(t, float64(42), resp[0]["id_secao"])
		assert.Equal(t, completedAt, resp[0]["data_realizacao"])
		assert.Equal(t, float64(3), resp[0]["total_respostas"])
		assert.Equal(t, float64(1), resp[0]["total_fotos"])

		assert.Contains(t, resp[1], "id_secao")
		assert.Nil(t, resp[1]["id_secao"])
		assert.Nil(t, resp[1]["data_realizacao"])
		assert.Equal(t, float64(0), resp[1]["total_respostas"])
	})

	t.Run("empty listing is an empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLister := NewMockLister(ctrl)
		mockLister.EXPECT().List(gomock.Any()).Return([]models.ListingRow{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dados", nil)
		rr := httptest.NewRecorder()
		NewListingHandler(mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLister := NewMockLister(ctrl)
		mockLister.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/api/dados", nil)
		rr := httptest.NewRecorder()
		NewListingHandler(mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Contains(t, resp, "error")
	})
}
