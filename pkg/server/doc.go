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

// Package server provides the HTTP server hosting the gateway API.
//
// The server is stateless and wires a small middleware chain around
// every registered route:
//
//   - Prometheus request metrics (rate, errors, duration)
//   - Request ID tracking (X-Request-Id, generated when absent)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// System endpoints (/health, /ready, /metrics) bypass the middleware
// chain. Readiness runs the configured ReadyCheck against the cluster.
//
// Basic usage:
//
//	srv := server.New(
//	    server.WithName("k3sgate"),
//	    server.WithVersion("v1.0.0"),
//	    server.WithHandler(routes),
//	    server.WithReadyCheck(check),
//	)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
