package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stlrelay-go/internal/config"
	"stlrelay-go/internal/drive"
)

func newTestRouter() http.Handler {
	cfg := &config.Config{
		Port:          8080,
		Env:           "development",
		UploadMaxSize: 1024 * 1024,
		BatchWorkers:  1,
		Drive: config.DriveConfig{
			AuthMode:       config.AuthModeServiceAccount,
			ParentFolderID: "parent-folder",
		},
	}

	// Zero-value client: no drive service, no oauth config. Routes that
	// reach the remote API fail with the not-authorized error, which is
	// enough to exercise the routing and validation layers.
	srv := NewServer(cfg, &drive.Client{})
	return srv.RegisterRoutes()
}

func TestHandleStatus(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "stl-relay", body.Service)
}

func TestHandleAuthWithoutOAuthMode(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/auth", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleOAuthCallbackMissingCode(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/oauth2callback", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRouteValidation(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"fileData":"AAAA"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRouteUnauthorizedClient(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/upload",
		strings.NewReader(`{"fileName":"benchy.stl","fileData":"AAAA"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Zero-value client cannot reach the remote API
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestBatchRouteValidation(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/upload-batch", strings.NewReader(`{"files":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
