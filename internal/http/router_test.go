package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"job-efficiency/internal/aggregators/mocks"
	"job-efficiency/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>dashboard</h1>"), 0o644))

	ctrl := gomock.NewController(t)
	logger, _ := loggers.New("info")
	router := NewRouter(mocks.NewMockEfficiencyService(ctrl), logger, staticDir)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK, expectedBody: `"status":"ok"`},
		{name: "metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "static index", method: http.MethodGet, path: "/", expectedStatus: http.StatusOK, expectedBody: "dashboard"},
		{name: "missing static file", method: http.MethodGet, path: "/nope.js", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestNewRouter_WithoutStaticDir(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger, _ := loggers.New("info")
	router := NewRouter(mocks.NewMockEfficiencyService(ctrl), logger, "")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
