package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/survey-collector/internal/models"
	"github.com/sbilibin2017/survey-collector/internal/services"
)

func TestDownloadHandler(t *testing.T) {
	arc := &models.SectionArchive{
		SectionID: 42,
		Owner:     models.SectionOwner{UserID: 7, Name: "Maria"},
	}

	tests := []struct {
		name               string
		query              string
		setupMocks         func(m *MockArchiveBuilder)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:               "missing section",
			query:              "",
			setupMocks:         func(m *MockArchiveBuilder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Parâmetro 'secao' ausente",
		},
		{
			name:               "non numeric section",
			query:              "?secao=abc",
			setupMocks:         func(m *MockArchiveBuilder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Parâmetro 'secao' inválido",
		},
		{
			name:  "unknown section",
			query: "?secao=99",
			setupMocks: func(m *MockArchiveBuilder) {
				m.EXPECT().Load(gomock.Any(), int64(99)).Return(nil, services.ErrSectionNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "Erro ao buscar usuário/seção",
		},
		{
			name:  "storage error",
			query: "?secao=42",
			setupMocks: func(m *MockArchiveBuilder) {
				m.EXPECT().Load(gomock.Any(), int64(42)).Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Erro ao buscar usuário/seção",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBuilder := NewMockArchiveBuilder(ctrl)
			tt.setupMocks(mockBuilder)

			req := httptest.NewRequest(http.MethodGet, "/download-secao"+tt.query, nil)
			rr := httptest.NewRecorder()
			NewDownloadHandler(mockBuilder).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedError, resp["error"])
		})
	}

	t.Run("streams archive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBuilder := NewMockArchiveBuilder(ctrl)
		gomock.InOrder(
			mockBuilder.EXPECT().Load(gomock.Any(), int64(42)).Return(arc, nil),
			mockBuilder.EXPECT().Write(gomock.Any(), arc).DoAndReturn(func(w io.Writer, _ *models.SectionArchive) error {
				_, err := w.Write([]byte("PK"))
				return err
			}),
		)

		req := httptest.NewRequest(http.MethodGet, "/download-secao?secao=42", nil)
		rr := httptest.NewRecorder()
		NewDownloadHandler(mockBuilder).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/zip", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="respostas_fotos_secao00042.zip"`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK", rr.Body.String())
	})

	t.Run("write failure after headers keeps status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockBuilder := NewMockArchiveBuilder(ctrl)
		mockBuilder.EXPECT().Load(gomock.Any(), int64(42)).Return(arc, nil)
		mockBuilder.EXPECT().Write(gomock.Any(), arc).Return(assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/download-secao?secao=42", nil)
		rr := httptest.NewRecorder()
		NewDownloadHandler(mockBuilder).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/zip", rr.Header().Get("Content-Type"))
	})
}
