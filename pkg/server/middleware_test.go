package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc, opts ...Option) *Server {
	t.Helper()

	cfg := NewConfig()
	cfg.Name = "test"
	cfg.Version = "v0.0.0-test"
	cfg.RateLimit = 1000
	cfg.RateLimitBurst = 1000

	all := append([]Option{WithConfig(cfg), WithHandler(handlers)}, opts...)
	s := New(all...)
	s.setReady(true)
	return s
}

func TestRequestIDGenerated(t *testing.T) {
	s := newTestServer(t, map[string]http.HandlerFunc{
		"GET /v1/ping": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	w := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get("X-Request-Id"))
	assert.NoError(t, err)
}

func TestRequestIDPropagated(t *testing.T) {
	id := uuid.New().String()
	var seen string

	s := newTestServer(t, map[string]http.HandlerFunc{
		"GET /v1/ping": func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(contextKeyRequestID).(string)
			w.WriteHeader(http.StatusOK)
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	r.Header.Set("X-Request-Id", id)
	w := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(w, r)

	assert.Equal(t, id, w.Header().Get("X-Request-Id"))
	assert.Equal(t, id, seen)
}

func TestRequestIDInvalidReplaced(t *testing.T) {
	s := newTestServer(t, map[string]http.HandlerFunc{
		"GET /v1/ping": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	r.Header.Set("X-Request-Id", "not-a-uuid")
	w := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(w, r)

	got := w.Header().Get("X-Request-Id")
	assert.NotEqual(t, "not-a-uuid", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRateLimitExceeded(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1

	s := New(WithConfig(cfg), WithHandler(map[string]http.HandlerFunc{
		"GET /v1/ping": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}))
	s.setReady(true)
	handler := s.setupRoutes()

	// first request consumes the burst
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// second is rejected
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.ErrCodeRateLimitExceeded, resp.Code)
	assert.True(t, resp.Retryable)
}

func TestRateLimitHeaders(t *testing.T) {
	s := newTestServer(t, map[string]http.HandlerFunc{
		"GET /v1/ping": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	})

	w := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func TestPanicRecovery(t *testing.T) {
	s := newTestServer(t, map[string]http.HandlerFunc{
		"GET /v1/boom": func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		},
	})

	w := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.ErrCodeInternal, resp.Code)
}

func TestResponseWriterTracksStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK) // ignored

	assert.Equal(t, http.StatusTeapot, rw.Status())
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriterImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, err := rw.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.Status())
}
