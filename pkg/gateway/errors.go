package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apierrors "k8s.io/apimachinery/pkg/api/errors"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
	"github.com/k3sgate/k3sgate/pkg/server"
)

// respondError maps cluster and validation errors onto HTTP statuses.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var structured *apperrors.StructuredError
	if errors.As(err, &structured) {
		switch structured.Code {
		case apperrors.ErrCodeInvalidRequest:
			server.WriteError(w, r, http.StatusBadRequest, structured.Code, structured.Message, false, structured.Context)
			return
		case apperrors.ErrCodeTimeout:
			server.WriteError(w, r, http.StatusGatewayTimeout, structured.Code, structured.Message, true, structured.Context)
			return
		case apperrors.ErrCodeUnavailable:
			server.WriteError(w, r, http.StatusServiceUnavailable, structured.Code, structured.Message, true, structured.Context)
			return
		}
	}

	switch {
	case apierrors.IsNotFound(err):
		server.WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound, err.Error(), false, nil)
	case apierrors.IsAlreadyExists(err):
		server.WriteError(w, r, http.StatusConflict, apperrors.ErrCodeConflict, err.Error(), false, nil)
	case apierrors.IsForbidden(err):
		server.WriteError(w, r, http.StatusForbidden, apperrors.ErrCodeForbidden, err.Error(), false, nil)
	case apierrors.IsInvalid(err), apierrors.IsBadRequest(err):
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest, err.Error(), false, nil)
	case apierrors.IsTimeout(err), apierrors.IsServerTimeout(err), errors.Is(err, context.DeadlineExceeded):
		server.WriteError(w, r, http.StatusGatewayTimeout, apperrors.ErrCodeTimeout, "cluster operation timed out", true, nil)
	default:
		slog.Error("unexpected cluster error",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		server.WriteError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternal, "internal server error", true, nil)
	}
}
