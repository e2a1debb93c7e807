package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name               string
		pingErr            error
		expectedStatusCode int
	}{
		{name: "database reachable", expectedStatusCode: http.StatusOK},
		{name: "database down", pingErr: assert.AnError, expectedStatusCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPinger := NewMockPinger(ctrl)
			mockPinger.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rr := httptest.NewRecorder()
			NewHealthHandler(mockPinger).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
