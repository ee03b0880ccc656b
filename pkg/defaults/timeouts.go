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

package defaults

import "time"

// Kubernetes timeouts for cluster API operations.
const (
	// K8sRequestTimeout bounds a single cluster API call made on behalf
	// of an HTTP request.
	K8sRequestTimeout = 15 * time.Second

	// K8sConnectTimeout bounds the startup connectivity check against
	// the cluster control plane.
	K8sConnectTimeout = 10 * time.Second

	// K8sReadyProbeTimeout bounds the connectivity check run by the
	// readiness endpoint. Shorter than the request timeout so a slow
	// control plane flips readiness instead of piling up probes.
	K8sReadyProbeTimeout = 5 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Request body limits.
const (
	// MaxRequestBodyBytes caps the size of resource manifests accepted
	// by the API.
	MaxRequestBodyBytes = 1 << 20 // 1 MiB
)
