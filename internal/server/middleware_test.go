package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/mandatum/internal/app"
	"github.com/ternarybob/mandatum/internal/common"
)

func newMiddlewareServer() *Server {
	return &Server{
		app: &app.App{
			Config: common.NewDefaultConfig(),
			Logger: arbor.NewLogger(),
		},
	}
}

func TestRecoveryMiddlewareReturnsJSONError(t *testing.T) {
	s := newMiddlewareServer()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	s.recoveryMiddleware(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/ai/query", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body["error"])
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	s := newMiddlewareServer()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight request must not reach the handler")
	})

	rec := httptest.NewRecorder()
	s.corsMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/items", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
