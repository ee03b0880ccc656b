// Package api provides the HTTP API layer for the k3s gateway service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// wiring it with the gateway routes and the cluster client. Startup order is:
// validate configuration, build the Kubernetes client, verify cluster
// connectivity, then serve.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/k3sgate/k3sgate/pkg/api"
//	    "github.com/k3sgate/k3sgate/pkg/config"
//	)
//
//	func main() {
//	    if err := api.Serve(context.Background(), config.FromEnv()); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET    /v1/namespaces                    - List namespaces (read-only)
//   - GET    /v1/pods/{namespace}              - List pods
//   - POST   /v1/pods/{namespace}              - Create a pod
//   - GET    /v1/pods/{namespace}/{name}       - Get a pod
//   - PUT    /v1/pods/{namespace}/{name}       - Update a pod (image, labels)
//   - DELETE /v1/pods/{namespace}/{name}       - Delete a pod
//   - (services and ingresses follow the same shape)
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check (verifies cluster connectivity)
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables (see pkg/config):
//   - PORT, ADDRESS: HTTP listen address
//   - KUBECONFIG: kubeconfig path (empty means automatic discovery)
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//   - RATE_LIMIT, RATE_LIMIT_BURST: request rate limiting
//   - REQUEST_TIMEOUT_SECONDS, SHUTDOWN_TIMEOUT_SECONDS: timeouts
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/k3sgate/k3sgate/pkg/api.version=1.0.0'"
package api
