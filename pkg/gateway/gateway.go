// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/k3sgate/k3sgate/pkg/cluster"
	"github.com/k3sgate/k3sgate/pkg/defaults"
	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

// Gateway translates REST requests into cluster operations.
type Gateway struct {
	cluster *cluster.Client
	timeout time.Duration
}

// Option is a functional option for configuring Gateway instances.
type Option func(*Gateway)

// WithTimeout bounds the time each cluster operation may take.
func WithTimeout(timeout time.Duration) Option {
	return func(g *Gateway) {
		if timeout > 0 {
			g.timeout = timeout
		}
	}
}

// New creates a gateway over the given cluster client.
func New(c *cluster.Client, opts ...Option) *Gateway {
	g := &Gateway{
		cluster: c,
		timeout: defaults.K8sRequestTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Routes returns the route table for the REST API. Keys are stdlib mux
// patterns with method and path wildcards.
func (g *Gateway) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /v1/namespaces": g.handleListNamespaces,

		"GET /v1/pods/{namespace}":           g.handleListPods,
		"POST /v1/pods/{namespace}":          g.handleCreatePod,
		"GET /v1/pods/{namespace}/{name}":    g.handleGetPod,
		"PUT /v1/pods/{namespace}/{name}":    g.handleUpdatePod,
		"DELETE /v1/pods/{namespace}/{name}": g.handleDeletePod,

		"GET /v1/services/{namespace}":           g.handleListServices,
		"POST /v1/services/{namespace}":          g.handleCreateService,
		"GET /v1/services/{namespace}/{name}":    g.handleGetService,
		"PUT /v1/services/{namespace}/{name}":    g.handleUpdateService,
		"DELETE /v1/services/{namespace}/{name}": g.handleDeleteService,

		"GET /v1/ingresses/{namespace}":           g.handleListIngresses,
		"POST /v1/ingresses/{namespace}":          g.handleCreateIngress,
		"GET /v1/ingresses/{namespace}/{name}":    g.handleGetIngress,
		"PUT /v1/ingresses/{namespace}/{name}":    g.handleUpdateIngress,
		"DELETE /v1/ingresses/{namespace}/{name}": g.handleDeleteIngress,
	}
}

// opContext derives a bounded context for a single cluster operation.
func (g *Gateway) opContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), g.timeout)
}

// decodeBody parses a JSON request body into v. Unknown fields and
// oversized bodies are rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "request body too large", err)
		}
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid request body", err)
	}

	// reject trailing garbage after the JSON document
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "request body must contain a single JSON object")
	}

	return nil
}
