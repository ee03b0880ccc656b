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

package config

import (
	"fmt"
	"os"
	"time"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

// Environment variable names read by FromEnv.
const (
	EnvPort            = "PORT"
	EnvAddress         = "ADDRESS"
	EnvKubeconfig      = "KUBECONFIG"
	EnvLogLevel        = "LOG_LEVEL"
	EnvRateLimit       = "RATE_LIMIT"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
	EnvRequestTimeout  = "REQUEST_TIMEOUT_SECONDS"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config holds the service configuration assembled from the environment.
// Construct it with FromEnv and hand it to pkg/api; there is no package-level
// singleton, callers own their instance.
type Config struct {
	// Address is the listen address (empty means all interfaces).
	Address string
	// Port is the HTTP listen port.
	Port int
	// Kubeconfig is the path to the kubeconfig file. Empty means automatic
	// discovery (KUBECONFIG, ~/.kube/config, in-cluster).
	Kubeconfig string
	// LogLevel is the textual log level (debug, info, warn, error).
	LogLevel string
	// RateLimit is the allowed request rate in requests per second.
	RateLimit float64
	// RateLimitBurst is the rate limiter burst size.
	RateLimitBurst int
	// RequestTimeout bounds a single cluster API call.
	RequestTimeout time.Duration
	// ShutdownTimeout bounds graceful server shutdown. Tune it to the pod
	// eviction grace period when running in-cluster.
	ShutdownTimeout time.Duration
}

// FromEnv builds a Config from environment variables, applying defaults for
// anything unset. Values that do not parse are left at their defaults;
// Validate catches values that parse but are out of range.
func FromEnv() *Config {
	cfg := &Config{
		Address:         "",
		Port:            8080,
		Kubeconfig:      os.Getenv(EnvKubeconfig),
		LogLevel:        os.Getenv(EnvLogLevel),
		RateLimit:       100,
		RateLimitBurst:  200,
		RequestTimeout:  15 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}

	if v := os.Getenv(EnvAddress); v != "" {
		cfg.Address = v
	}

	if v := os.Getenv(EnvPort); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	if v := os.Getenv(EnvRateLimit); v != "" {
		var limit float64
		if _, err := fmt.Sscanf(v, "%f", &limit); err == nil {
			cfg.RateLimit = limit
		}
	}

	if v := os.Getenv(EnvRateLimitBurst); v != "" {
		var burst int
		if _, err := fmt.Sscanf(v, "%d", &burst); err == nil {
			cfg.RateLimitBurst = burst
		}
	}

	if v := os.Getenv(EnvRequestTimeout); v != "" {
		var seconds int
		if _, err := fmt.Sscanf(v, "%d", &seconds); err == nil {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		var seconds int
		if _, err := fmt.Sscanf(v, "%d", &seconds); err == nil {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}

// Validate checks the configuration for values that would prevent the
// service from operating. It returns a structured error naming the first
// offending setting.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			"port out of range", map[string]any{"port": c.Port})
	}

	if c.RateLimit <= 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			"rate limit must be positive", map[string]any{"rateLimit": c.RateLimit})
	}

	if c.RateLimitBurst < 1 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			"rate limit burst must be at least 1", map[string]any{"burst": c.RateLimitBurst})
	}

	if c.RequestTimeout <= 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			"request timeout must be positive", map[string]any{"timeout": c.RequestTimeout.String()})
	}

	if c.ShutdownTimeout <= 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			"shutdown timeout must be positive", map[string]any{"timeout": c.ShutdownTimeout.String()})
	}

	if c.Kubeconfig != "" {
		if _, err := os.Stat(c.Kubeconfig); err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
				"kubeconfig path is not readable", err, map[string]any{"path": c.Kubeconfig})
		}
	}

	return nil
}
