package api

import (
	"context"

	"github.com/k3sgate/k3sgate/pkg/defaults"
	"github.com/k3sgate/k3sgate/pkg/k8s/client"
)

// verifyCluster confirms the cluster API is reachable before the server
// starts accepting traffic.
func verifyCluster(ctx context.Context, clientset client.Interface) error {
	verifyCtx, cancel := context.WithTimeout(ctx, defaults.K8sConnectTimeout)
	defer cancel()

	return client.Verify(verifyCtx, clientset)
}
