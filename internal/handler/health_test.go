package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-planner/internal/api"
	"github.com/pkordes/trip-planner/internal/handler"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	// Arrange: a Server with no services still mounts /healthz.
	httpHandler := handler.Handler(handler.NewHealthHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	// Act
	httpHandler.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var body api.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

// TestUnmountedRoutes_404 verifies that routes of services left nil in Deps
// are not registered.
func TestUnmountedRoutes_404(t *testing.T) {
	httpHandler := handler.Handler(handler.NewHealthHandler())

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	httpHandler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// TestGetOpenAPI_documentsMountedRoutes checks the served document parses and
// describes the resource routes.
func TestGetOpenAPI_documentsMountedRoutes(t *testing.T) {
	httpHandler := handler.Handler(handler.NewHealthHandler())

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	httpHandler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))

	var doc struct {
		OpenAPI string                    `yaml:"openapi"`
		Paths   map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &doc))
	require.Equal(t, "3.0.3", doc.OpenAPI)
	for _, path := range []string{
		"/healthz", "/trips", "/trips/{tripId}", "/trips/{tripId}/activities",
		"/activities", "/activities/{id}", "/trips/{tripId}/budget", "/chat",
		"/currency/convert", "/weather",
	} {
		require.Contains(t, doc.Paths, path)
	}
	require.Contains(t, doc.Paths["/activities/{id}"], "patch")
}
