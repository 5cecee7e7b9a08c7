package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/storefront/internal/handlers"
	"github.com/01moynul/storefront/internal/middleware"
)

func TestSetupRouterWithoutDatabase(t *testing.T) {
	router := SetupRouter(handlers.New(nil, handlers.Info{Version: "1.0.0"}, time.Second), Options{})

	testCases := []struct {
		name           string
		path           string
		expectedStatus int
		expectedType   string
		expectedError  string
	}{
		{name: "Health still answers", path: "/health", expectedStatus: http.StatusOK, expectedType: "application/json"},
		{name: "Products degrade to 503", path: "/api/products", expectedStatus: http.StatusServiceUnavailable, expectedType: "application/json", expectedError: "Database not available"},
		{name: "Single product degrades to 503", path: "/api/products/1", expectedStatus: http.StatusServiceUnavailable, expectedType: "application/json", expectedError: "Database not available"},
		{name: "Categories degrade to 503", path: "/api/categories", expectedStatus: http.StatusServiceUnavailable, expectedType: "application/json", expectedError: "Database not available"},
		{name: "Unknown route", path: "/api/unknown", expectedStatus: http.StatusNotFound, expectedType: "application/json", expectedError: "Endpoint not found"},
		{name: "Missing asset", path: "/static/missing.js", expectedStatus: http.StatusNotFound, expectedType: "application/json", expectedError: "Endpoint not found"},
		{name: "Storefront page", path: "/", expectedStatus: http.StatusOK, expectedType: "text/html"},
		{name: "Storefront script", path: "/static/app.js", expectedStatus: http.StatusOK, expectedType: "javascript"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tc.expectedType)
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
			if tc.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tc.expectedError, body["error"])
			}
		})
	}
}

func TestHealthReportsDatabaseUnhealthyWithoutStore(t *testing.T) {
	router := SetupRouter(handlers.New(nil, handlers.Info{}, time.Second), Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var report handlers.HealthReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, "unhealthy", report.Checks.Database)
}

func TestPreflightIsAnswered(t *testing.T) {
	router := SetupRouter(handlers.New(nil, handlers.Info{}, time.Second), Options{AllowedOrigins: []string{"https://shop.test"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.test")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shop.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestResponsesAreCompressed(t *testing.T) {
	router := SetupRouter(handlers.New(nil, handlers.Info{}, time.Second), Options{})

	req := httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
