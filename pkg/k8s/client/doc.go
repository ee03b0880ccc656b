// Package client builds the Kubernetes client used by the gateway and
// verifies cluster connectivity. Configuration is discovered from an
// explicit kubeconfig path, the KUBECONFIG environment variable,
// ~/.kube/config, or the in-cluster service account, in that order.
package client
