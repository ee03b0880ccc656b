package api

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/k3sgate/k3sgate/pkg/cluster"
	"github.com/k3sgate/k3sgate/pkg/config"
	"github.com/k3sgate/k3sgate/pkg/gateway"
	"github.com/k3sgate/k3sgate/pkg/k8s/client"
	"github.com/k3sgate/k3sgate/pkg/logging"
	"github.com/k3sgate/k3sgate/pkg/server"
)

const (
	name           = "k3sgate-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/k3sgate/k3sgate/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the build version of the API server.
func Version() string {
	return version
}

// Serve starts the API server and blocks until ctx is canceled or the
// server fails. It validates configuration, connects to the cluster,
// verifies connectivity, and wires the gateway routes.
func Serve(ctx context.Context, cfg *config.Config) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	clientset, _, err := client.Build(cfg.Kubeconfig)
	if err != nil {
		slog.Error("failed to build cluster client", "error", err)
		return err
	}

	if err := verifyCluster(ctx, clientset); err != nil {
		slog.Error("cluster connectivity check failed", "error", err)
		return err
	}
	slog.Info("cluster connectivity verified")

	g := gateway.New(cluster.New(clientset), gateway.WithTimeout(cfg.RequestTimeout))

	srvConfig := server.NewConfig()
	srvConfig.Name = name
	srvConfig.Version = version
	srvConfig.Address = cfg.Address
	srvConfig.Port = cfg.Port
	srvConfig.RateLimit = rate.Limit(cfg.RateLimit)
	srvConfig.RateLimitBurst = cfg.RateLimitBurst
	srvConfig.ShutdownTimeout = cfg.ShutdownTimeout

	s := server.New(
		server.WithConfig(srvConfig),
		server.WithHandler(g.Routes()),
		server.WithReadyCheck(func(ctx context.Context) error {
			return client.Verify(ctx, clientset)
		}),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
