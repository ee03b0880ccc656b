package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

func TestWriteError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/pods/default/missing", nil)
	ctx := context.WithValue(r.Context(), contextKeyRequestID, "req-123")
	w := httptest.NewRecorder()

	WriteError(w, r.WithContext(ctx), http.StatusNotFound, apperrors.ErrCodeNotFound,
		"pod not found", false, map[string]any{"namespace": "default", "name": "missing"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.ErrCodeNotFound, resp.Code)
	assert.Equal(t, "pod not found", resp.Message)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Retryable)
	assert.Equal(t, "default", resp.Details["namespace"])
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteErrorGeneratesRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/namespaces", nil)
	w := httptest.NewRecorder()

	WriteError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternal,
		"something broke", true, nil)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.RequestID)
	assert.NoError(t, err)
	assert.True(t, resp.Retryable)
}
