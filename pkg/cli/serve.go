/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/k3sgate/k3sgate/pkg/api"
	"github.com/k3sgate/k3sgate/pkg/config"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Start the REST API server",
		Description: `Start the HTTP server exposing cluster resources over REST:
  - Pods, services, and ingresses (full CRUD)
  - Namespaces (read-only)
  - Traefik ingress configuration encoded to and decoded from annotations

The server verifies cluster connectivity before accepting traffic and
exposes /health, /ready, and /metrics system endpoints.

# Examples

Serve with the default kubeconfig discovery:
  k3sgated serve

Serve against a specific k3s cluster on a custom port:
  k3sgated serve --kubeconfig /etc/rancher/k3s/k3s.yaml --port 9090`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Usage:   "Listen address (empty means all interfaces)",
				Sources: cli.EnvVars(config.EnvAddress),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP listen port",
				Sources: cli.EnvVars(config.EnvPort),
			},
			&cli.StringFlag{
				Name:    "kubeconfig",
				Usage:   "Path to kubeconfig file (empty means automatic discovery)",
				Sources: cli.EnvVars(config.EnvKubeconfig),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(config.EnvLogLevel),
			},
			&cli.FloatFlag{
				Name:    "rate-limit",
				Usage:   "Allowed request rate in requests per second",
				Sources: cli.EnvVars(config.EnvRateLimit),
			},
			&cli.IntFlag{
				Name:    "request-timeout",
				Usage:   "Per-request cluster operation timeout in seconds",
				Sources: cli.EnvVars(config.EnvRequestTimeout),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, buildConfigFromCmd(cmd))
		},
	}
}

// buildConfigFromCmd layers explicit flags over the environment-derived
// configuration.
func buildConfigFromCmd(cmd *cli.Command) *config.Config {
	cfg := config.FromEnv()

	if cmd.IsSet("address") {
		cfg.Address = cmd.String("address")
	}
	if cmd.IsSet("port") {
		cfg.Port = int(cmd.Int("port"))
	}
	if cmd.IsSet("kubeconfig") {
		cfg.Kubeconfig = cmd.String("kubeconfig")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("rate-limit") {
		cfg.RateLimit = cmd.Float("rate-limit")
	}
	if cmd.IsSet("request-timeout") {
		cfg.RequestTimeout = time.Duration(cmd.Int("request-timeout")) * time.Second
	}

	return cfg
}
